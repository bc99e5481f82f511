package main

import (
	"flag"
	"log"
	"os"

	"h2m"
	"h2m/internal/registry"
	"h2m/internal/sourcetext"
	"h2m/internal/transunit"
	"h2m/internal/typefmt"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Path to the translation unit JSON file")
		outputPath = flag.String("output", "/dev/stdout", "Path to the output file")
		configPath = flag.String("config", "", "Path to a YAML config file (silent, quiet, autobind, array_transpose, detect_invalid)")

		silent         = flag.Bool("silent", false, "Suppress all diagnostics")
		quiet          = flag.Bool("quiet", false, "Suppress warnings, keep errors")
		autobind       = flag.Bool("autobind", false, "Preserve renamed identifiers via BIND(C, name=...)")
		arrayTranspose = flag.Bool("array-transpose", true, "Transpose array dimensions to Fortran column-major order")
		detectInvalid  = flag.Bool("detect-invalid", false, "Comment out declarations the type formatter flags as a problem")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("Translation unit not informed")
	}

	cfg := h2m.NewConfig()
	if *configPath != "" {
		fileCfg, err := h2m.LoadConfigFile(*configPath)
		if err != nil {
			log.Fatalf("Can't read config file: %s", err.Error())
		}
		cfg = fileCfg
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "silent":
			cfg.SetBool("silent", *silent)
		case "quiet":
			cfg.SetBool("quiet", *quiet)
		case "autobind":
			cfg.SetBool("autobind", *autobind)
		case "array-transpose":
			cfg.SetBool("array_transpose", *arrayTranspose)
		case "detect-invalid":
			cfg.SetBool("detect_invalid", *detectInvalid)
		}
	})

	unitData, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatalf("Can't read translation unit file: %s", err.Error())
	}
	decls, err := transunit.DecodeUnit(unitData)
	if err != nil {
		log.Fatalf("Can't decode translation unit: %s", err.Error())
	}

	translator := h2m.NewTranslator(cfg, typefmt.New(), registry.New(), sourcetext.New(string(unitData)))
	outputData, diags := translator.TranslateUnit(decls)

	for _, d := range diags.Items() {
		log.Print(d.FormatCLI())
	}

	if err = os.WriteFile(*outputPath, []byte(outputData), 0644); err != nil {
		log.Fatalf("Can't write output: %s", err.Error())
	}
}
