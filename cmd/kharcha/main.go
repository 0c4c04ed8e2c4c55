package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"kharcha/internal/app"
	"kharcha/internal/cli"
	"kharcha/internal/term"
	"kharcha/internal/tracker"
)

const usage = `kharcha - personal expense tracker

Usage:
  kharcha                                  show the dashboard and charts
  kharcha add <amount> <description> [category]
  kharcha remove <id>
  kharcha list [all|today|month]
  kharcha quick [n]                        list presets, or add preset n
  kharcha preset add <description> <amount> <category>
  kharcha preset remove <n>
  kharcha preset update <n> <description> <amount> <category>
  kharcha budget [amount]                  show or set the monthly budget
  kharcha currency [label]                 show or set the currency label
  kharcha theme [light|dark]               toggle or set the theme
  kharcha export [file]                    write a snapshot (default stdout)
  kharcha import <file>                    load a snapshot
  kharcha clear                            erase everything, re-seed defaults
`

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg.LogLevel)

	ctx := context.Background()
	svc, cleanup, err := cli.InitTracker(ctx, cfg, logger)
	if err != nil {
		logger.Error("Startup failed", "error", err)
		os.Exit(1)
	}
	defer func() { _ = cleanup() }()

	currency, err := svc.Currency(ctx)
	if err != nil {
		logger.Error("Read currency failed", "error", err)
		os.Exit(1)
	}

	ctrl := app.NewController(svc,
		term.Notifier{Out: os.Stderr},
		term.NewCharts(os.Stdout, currency),
		os.Stdout)

	if err := run(ctx, ctrl, svc, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, ctrl *app.Controller, svc *tracker.Service, args []string) error {
	if len(args) == 0 {
		return ctrl.Refresh(ctx)
	}

	switch args[0] {
	case "add":
		if len(args) < 3 {
			return fmt.Errorf("usage: kharcha add <amount> <description> [category]")
		}
		category := ""
		if len(args) > 3 {
			category = args[3]
		}
		return ctrl.AddExpense(ctx, args[1], args[2], category)

	case "remove", "rm":
		if len(args) != 2 {
			return fmt.Errorf("usage: kharcha remove <id>")
		}
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}
		return ctrl.RemoveExpense(ctx, id)

	case "list", "ls":
		window := "today"
		if len(args) > 1 {
			window = args[1]
		}
		return listExpenses(ctx, svc, window)

	case "quick":
		if len(args) == 1 {
			return listPresets(ctx, svc)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid preset number %q", args[1])
		}
		return ctrl.QuickAdd(ctx, n-1)

	case "preset":
		return runPreset(ctx, svc, args[1:])

	case "budget":
		if len(args) == 1 {
			budget, err := svc.Budget(ctx)
			if err != nil {
				return err
			}
			currency, err := svc.Currency(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("%s%s\n", currency, budget.Decimal())
			return nil
		}
		return ctrl.SetBudget(ctx, args[1])

	case "currency":
		if len(args) == 1 {
			currency, err := svc.Currency(ctx)
			if err != nil {
				return err
			}
			fmt.Println(currency)
			return nil
		}
		return ctrl.SetCurrency(ctx, args[1])

	case "theme":
		name := ""
		if len(args) > 1 {
			name = args[1]
		}
		return ctrl.SetTheme(ctx, name)

	case "export":
		data, err := ctrl.Export(ctx)
		if err != nil {
			return err
		}
		if len(args) > 1 {
			return os.WriteFile(args[1], data, 0644)
		}
		fmt.Println(string(data))
		return nil

	case "import":
		if len(args) != 2 {
			return fmt.Errorf("usage: kharcha import <file>")
		}
		data, err := os.ReadFile(args[1])
		if err != nil {
			return err
		}
		return ctrl.Import(ctx, data)

	case "clear":
		return ctrl.ClearAll(ctx)

	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil

	default:
		fmt.Print(usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func runPreset(ctx context.Context, svc *tracker.Service, args []string) error {
	if len(args) == 0 {
		return listPresets(ctx, svc)
	}
	switch args[0] {
	case "add":
		if len(args) != 4 {
			return fmt.Errorf("usage: kharcha preset add <description> <amount> <category>")
		}
		b, err := parsePreset(args[1], args[2], args[3])
		if err != nil {
			return err
		}
		_, err = svc.AddQuickButton(ctx, b)
		return err
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("usage: kharcha preset remove <n>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid preset number %q", args[1])
		}
		_, err = svc.RemoveQuickButton(ctx, n-1)
		return err
	case "update":
		if len(args) != 5 {
			return fmt.Errorf("usage: kharcha preset update <n> <description> <amount> <category>")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid preset number %q", args[1])
		}
		b, err := parsePreset(args[2], args[3], args[4])
		if err != nil {
			return err
		}
		_, err = svc.UpdateQuickButton(ctx, n-1, b)
		return err
	default:
		return fmt.Errorf("unknown preset command %q", args[0])
	}
}
