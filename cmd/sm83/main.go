package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/internal/gameboy"
	"github.com/thelolagemann/sm83/internal/types"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sm83",
		Short:        "Run programs on an SM83 (Game Boy) CPU",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(newRunCmd(), newOpcodesCmd())
	return rootCmd
}

type runOptions struct {
	boot     string
	steps    uint64
	entry    string
	serial   bool
	trace    bool
	logLevel string
	state    string
	save     string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Run a program image until it halts, stops or fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return run(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}
	runCmd.Flags().StringVar(&opts.boot, "boot", "", "Boot ROM to run before the program")
	runCmd.Flags().Uint64Var(&opts.steps, "steps", 0, "Maximum number of steps (0 = no limit)")
	runCmd.Flags().StringVar(&opts.entry, "entry", "", "Entry point, e.g. 0x0150")
	runCmd.Flags().BoolVar(&opts.serial, "serial", false, "Copy serial output to stdout")
	runCmd.Flags().BoolVar(&opts.trace, "trace", false, "Log every instruction executed")
	runCmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, error)")
	runCmd.Flags().StringVar(&opts.state, "state", "", "State file to resume from")
	runCmd.Flags().StringVar(&opts.save, "save", "", "Write the final state to this file")

	return runCmd
}

func run(ctx context.Context, stdout, stderr io.Writer, image string, opts runOptions) error {
	level, err := log.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	if opts.trace && level < log.DebugLevel {
		level = log.DebugLevel
	}
	logger := log.NewWithOutput(stderr, level)

	program, err := utils.LoadFile(image)
	if err != nil {
		return err
	}

	gbOpts := []gameboy.Opt{
		gameboy.WithLogger(logger),
		gameboy.WithStepLimit(opts.steps),
	}
	if opts.boot != "" {
		bootROM, err := utils.LoadFile(opts.boot)
		if err != nil {
			return err
		}
		gbOpts = append(gbOpts, gameboy.WithBootROM(bootROM))
	}
	if opts.entry != "" {
		pc, err := strconv.ParseUint(opts.entry, 0, 16)
		if err != nil {
			return fmt.Errorf("invalid entry point %q: %w", opts.entry, err)
		}
		gbOpts = append(gbOpts, gameboy.WithEntryPoint(uint16(pc)))
	}
	if opts.serial {
		gbOpts = append(gbOpts, gameboy.WithSerialOutput(stdout))
	}
	if opts.trace {
		gbOpts = append(gbOpts, gameboy.WithTrace())
	}
	if opts.state != "" {
		state, err := os.ReadFile(opts.state)
		if err != nil {
			return err
		}
		gbOpts = append(gbOpts, gameboy.WithState(state))
	}

	g, err := gameboy.New(program, gbOpts...)
	if err != nil {
		return err
	}

	res, runErr := g.Run(ctx)
	if opts.serial {
		fmt.Fprintln(stdout)
	}
	printResult(stdout, g, res)

	if opts.save != "" {
		s := types.NewState()
		g.Save(s)
		if err := s.SaveToFile(opts.save); err != nil {
			return err
		}
		logger.Infof("state written to %s", opts.save)
	}

	return runErr
}

func printResult(w io.Writer, g *gameboy.GameBoy, res gameboy.Result) {
	c := g.CPU
	fmt.Fprintf(w, "stopped:     %s\n", res.Reason)
	fmt.Fprintf(w, "steps:       %d\n", res.Steps)
	fmt.Fprintf(w, "cycles:      %d\n", res.Cycles)
	fmt.Fprintf(w, "AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X IME=%t\n",
		c.AF.Uint16(), c.BC.Uint16(), c.DE.Uint16(), c.HL.Uint16(), c.SP, c.PC, c.IME)
	fmt.Fprintf(w, "fingerprint: %016x\n", c.Fingerprint())
}

func newOpcodesCmd() *cobra.Command {
	var cbOnly bool

	opcodesCmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the instruction tables with their cycle costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if !cbOnly {
				printTable(w, "", &cpu.InstructionSet)
				fmt.Fprintln(w)
			}
			printTable(w, "CB ", &cpu.InstructionSetCB)
			return nil
		},
	}
	opcodesCmd.Flags().BoolVar(&cbOnly, "cb", false, "Only list the CB prefixed instructions")

	return opcodesCmd
}

func printTable(w io.Writer, prefix string, table *[256]cpu.Instruction) {
	for i, instruction := range table {
		cycles := strconv.Itoa(int(instruction.Cycles()))
		if branch := instruction.BranchCycles(); branch != 0 && branch != instruction.Cycles() {
			cycles += "/" + strconv.Itoa(int(branch))
		}
		fmt.Fprintf(w, "%s%02X  %-16s %s\n", prefix, i, instruction.Name(), cycles)
	}
}
