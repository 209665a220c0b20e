package main

import (
	"flag"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

func NewCommand() *cobra.Command {
	o := NewOptions()
	cmd := &cobra.Command{
		Use:   "seqgen",
		Short: "Generate typed slice helpers for marked types",
		Long: `seqgen scans a Go package for type declarations whose doc comment
contains an @seq marker and writes a <type>_seq.go file next to them.
The file declares a slice type with Filter, Map, FlatMap, GroupBy,
JoinToString, Slice, Find, All and Any methods backed by package seq.

Use "@seq plural" to name a single type's slice after its plural.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			o.Out = cmd.OutOrStdout()
			return Run(o)
		},
	}
	o.AddFlags(cmd.Flags())

	klogFlags := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.Flags().AddGoFlagSet(klogFlags)
	return cmd
}

func main() {
	defer klog.Flush()
	if err := NewCommand().Execute(); err != nil {
		klog.ErrorS(err, "seqgen failed")
		klog.Flush()
		os.Exit(1)
	}
}
