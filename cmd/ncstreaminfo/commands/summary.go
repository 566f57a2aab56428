package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/kungfusheep/ncstream/decode"
	"github.com/kungfusheep/ncstream/graph"
	"github.com/kungfusheep/ncstream/ncstream"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Decode a header-magic frame and report its structural health",
	Args:  cobra.ExactArgs(1),
	RunE:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	packet, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read %s: %w", args[0], err)
	}

	result, err := decode.DecodeWithOptions(packet, limitsFromFlags(), nil)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	defer result.Header.Reclaim()

	printSummary(cmd, args[0], result)
	return nil
}

func printSummary(cmd *cobra.Command, path string, result *decode.Result) {
	h := result.Header
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s\n", path)
	if h.Location.Defined {
		fmt.Fprintf(out, "  location: %s\n", h.Location.Value)
	}
	if h.Title.Defined {
		fmt.Fprintf(out, "  title:    %s\n", h.Title.Value)
	}
	if h.ID.Defined {
		fmt.Fprintf(out, "  id:       %s\n", h.ID.Value)
	}
	if h.Version.Defined {
		fmt.Fprintf(out, "  version:  %d\n", h.Version.Value)
	}

	counts := map[ncstream.Sort]int{}
	var dims []*ncstream.Dimension
	for _, n := range result.NodeSet {
		counts[ncstream.MetaOf(n).Sort]++
		if d, ok := n.(*ncstream.Dimension); ok {
			dims = append(dims, d)
		}
	}

	fmt.Fprintf(out, "  nodes:    %d\n", len(result.NodeSet))
	for _, s := range sortedSorts(counts) {
		fmt.Fprintf(out, "    %-14s %d\n", s, counts[s])
	}

	kinds := map[graph.Kind]int{}
	unresolved := 0
	for _, d := range dims {
		kinds[graph.Classify(d)]++
		if !d.Meta.Flags.IsDecl && d.Meta.DimDecl == nil {
			unresolved++
		}
	}
	fmt.Fprintf(out, "  dimensions:\n")
	for _, k := range []graph.Kind{graph.KindFixed, graph.KindUnlimited, graph.KindVlen, graph.KindPrivate, graph.KindUnknown} {
		if kinds[k] > 0 {
			fmt.Fprintf(out, "    %-14s %d\n", k, kinds[k])
		}
	}
	if unresolved > 0 {
		fmt.Fprintf(out, "  unresolved dimension refs: %d\n", unresolved)
	}
}

func sortedSorts(counts map[ncstream.Sort]int) []ncstream.Sort {
	sorts := make([]ncstream.Sort, 0, len(counts))
	for s := range counts {
		sorts = append(sorts, s)
	}
	sort.Slice(sorts, func(i, j int) bool { return sorts[i].String() < sorts[j].String() })
	return sorts
}
