package main

import (
	"flag"
	"fmt"
	"minibasic/internal/logger"
	"minibasic/internal/session"
	"os"

	"github.com/charmbracelet/log"
)

// Main entry point for the minibasic interpreter.
func main() {
	options := session.Session{}

	flag.BoolVar(&options.Help, "h", false, "Show help")
	flag.BoolVar(&options.Verbose, "v", false, "Verbose mode")
	flag.BoolVar(&options.ShouldRun, "r", false, "RUN the program after loading it")
	flag.BoolVar(&options.NoColor, "n", false, "No color")
	flag.BoolVar(&options.Dump, "d", false, "Dump interpreter state on error")
	flag.IntVar(&options.MaxSteps, "s", 0, "Maximum statements per line (0 = config value)")
	flag.StringVar(&options.ConfigFile, "c", "", "YAML configuration file")
	flag.StringVar(&options.Eval, "e", "", "Evaluate an expression and print its value")

	flag.Parse()
	args := flag.Args()

	logger.Init(options.Verbose, options.NoColor)
	if options.Help {
		fmt.Printf("Usage: %s [options] [file]\n", os.Args[0])
		fmt.Println("Without a file an interactive prompt is started.")
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if len(args) > 0 {
		options.SourceFile = args[0]
	}

	if err := options.Run(); err != nil {
		log.Fatal("Execution failed", "error", err)
	}
}
