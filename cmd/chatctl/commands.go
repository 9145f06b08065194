package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"helphood/internal/fallback"
)

// newRootCmd creates the top-level "chatctl" command.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chatctl",
		Short:         "Inspect the HelpHood fallback assistant offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newClassifyCmd(),
		newBucketsCmd(),
	)

	return root
}

func newClassifyCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "classify <message>",
		Short: "Show which bucket a message falls into and one canned reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var rnd fallback.RandSource
			if cmd.Flags().Changed("seed") {
				rnd = rand.New(rand.NewPCG(seed, seed))
			}
			return runClassify(cmd.OutOrStdout(), fallback.New(rnd), strings.Join(args, " "))
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible reply choice")
	return cmd
}

func runClassify(w io.Writer, classifier *fallback.Classifier, message string) error {
	category, text := classifier.Respond(message)
	fmt.Fprintf(w, "category: %s\n", category)
	fmt.Fprintf(w, "response: %s\n", text)
	return nil
}

func newBucketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "buckets",
		Short: "List fallback buckets in match priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuckets(cmd.OutOrStdout())
		},
	}
}

func runBuckets(w io.Writer) error {
	for i, b := range fallback.Buckets() {
		keywords := strings.Join(b.Keywords, ", ")
		if keywords == "" {
			keywords = "(no keywords, used when nothing else matches)"
		}
		fmt.Fprintf(w, "%2d. %-16s %d responses  %s\n", i+1, b.Name, len(b.Responses), keywords)
	}
	return nil
}
