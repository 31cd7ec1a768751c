package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zhouzirui/folio/backend/internal/analysis/matcher"
	"github.com/zhouzirui/folio/backend/internal/model/knowledge"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		owner    string
		asJSON   bool
		listOnly bool
	)

	cmd := &cobra.Command{
		Use:   "askbot [input...]",
		Short: "Print the canned chat reply for each input",
		Long: `Runs the portfolio chat matcher locally. Each argument is treated as one
user message; with no arguments, messages are read line by line from stdin.`,
		SilenceUsage: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
			if !cmd.Flags().Changed("owner") {
				if env := strings.TrimSpace(os.Getenv("OWNER_NAME")); env != "" {
					owner = env
				}
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			base := knowledge.Seed(owner)
			out := cmd.OutOrStdout()

			if listOnly {
				return printKnowledge(out, base)
			}

			m := matcher.New(base)
			if len(args) > 0 {
				for _, input := range args {
					if err := printResult(out, input, m.Resolve(input), asJSON); err != nil {
						return err
					}
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				input := scanner.Text()
				if strings.TrimSpace(input) == "" {
					continue
				}
				if err := printResult(out, input, m.Resolve(input), asJSON); err != nil {
					return err
				}
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringVar(&owner, "owner", knowledge.DefaultOwner, "portfolio owner name used in replies")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit one JSON object per input")
	cmd.Flags().BoolVar(&listOnly, "list", false, "list knowledge entries in match order and exit")
	return cmd
}

type replyResult struct {
	Input   string `json:"input"`
	Outcome string `json:"outcome"`
	Keyword string `json:"keyword,omitempty"`
	Reply   string `json:"reply"`
}

func printResult(w io.Writer, input string, res matcher.Result, asJSON bool) error {
	if asJSON {
		return json.NewEncoder(w).Encode(replyResult{
			Input:   input,
			Outcome: string(res.Outcome),
			Keyword: res.Keyword,
			Reply:   res.Reply,
		})
	}

	rule := string(res.Outcome)
	if res.Keyword != "" {
		rule += ":" + res.Keyword
	}
	_, err := fmt.Fprintf(w, "> %s\n[%s] %s\n\n", input, rule, res.Reply)
	return err
}

func printKnowledge(w io.Writer, base *knowledge.Base) error {
	for i, e := range base.Entries() {
		if _, err := fmt.Fprintf(w, "%2d  %s\n", i+1, e.Keyword); err != nil {
			return err
		}
	}
	for _, g := range base.Groups() {
		joiner := " | "
		if g.RequireAll {
			joiner = " & "
		}
		if _, err := fmt.Fprintf(w, "--  %s (%s)\n", g.Name, strings.Join(g.Terms, joiner)); err != nil {
			return err
		}
	}
	return nil
}
