package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/knockscan/knock/output"
	"github.com/knockscan/knock/scan"
	"github.com/knockscan/knock/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var debug bool
var timeoutMS int = 1000
var deadlineMS int
var workers int = scan.DefaultWorkers
var portSelection string
var outputPath string
var versionRequested bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&versionRequested, "version", "", versionRequested, "Output version information and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "verbose", "v", debug, "Enable verbose logging")
	rootCmd.PersistentFlags().IntVarP(&timeoutMS, "timeout-ms", "t", timeoutMS, "Per-port connect timeout in MS")
	rootCmd.PersistentFlags().IntVarP(&deadlineMS, "deadline-ms", "", deadlineMS, "Overall scan deadline in MS (0 = none)")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", workers, "Maximum probes in flight at once")
	rootCmd.PersistentFlags().StringVarP(&portSelection, "ports", "p", portSelection, "Port range to scan, e.g. 80 or 1-1024. Defaults to the full range")
	rootCmd.PersistentFlags().StringVarP(&outputPath, "output", "o", outputPath, "Also write the report to this file")
}

var rootCmd = &cobra.Command{
	Use:   "knock [flags] <target>",
	Short: "Knock is a single-host TCP port scanner",
	Long:  `A concurrent TCP connect scanner that classifies ports on one host as open, closed or filtered and labels open ports with their well-known service.`,
	Run: func(cmd *cobra.Command, args []string) {

		if versionRequested {
			v := version.Version
			if v == "" {
				v = "development version"
			}
			fmt.Printf("knock %s\n", v)
			return
		}

		if debug {
			log.SetLevel(log.DebugLevel)
		}

		if len(args) != 1 {
			fmt.Println("Please specify exactly one target")
			os.Exit(1)
		}

		ports, err := scan.ParsePortRange(portSelection)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if workers < 1 {
			fmt.Println("Workers must be at least 1")
			os.Exit(1)
		}

		log.Debugf("Resolving target %s...", args[0])

		target, err := scan.ResolveTarget(args[0])
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ctx := context.Background()
		if deadlineMS > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Millisecond*time.Duration(deadlineMS))
			defer cancel()
		}

		scanner := scan.NewConnectScanner(target, ports, workers, time.Millisecond*time.Duration(timeoutMS))

		fmt.Printf("\nStarting scan of %s at %s\n\n", target, time.Now().String())
		log.Debugf("Scanning %d ports...", ports.Len())

		report, err := scanner.Scan(ctx)
		if err != nil {
			var fault *scan.SchedulerFaultError
			if errors.As(err, &fault) && fault.Report != nil {
				// surface whatever completed before the fault
				_ = output.NewConsole(os.Stdout).Write(fault.Report)
			}
			fmt.Println(err)
			os.Exit(1)
		}

		if err := output.NewConsole(os.Stdout).Write(report); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if outputPath != "" {
			if err := output.NewFile(outputPath).Write(report); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
			log.Debugf("Report written to %s", outputPath)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
