package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	msysmake "github.com/contriboss/msys-makefile-go"
)

var (
	mountPoint string
	listMounts bool
)

var mountCmd = &cobra.Command{
	Use:   "mount <dir>",
	Short: "Resolve a mount point from the MSYS fstab next to a directory",
	Long: `Resolve a mount point from <dir>/../etc/fstab.

Prints the bin directory under the mounted source path, or every entry
of the table with --list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fsys := msysmake.OSFileSystem{}
		out := cmd.OutOrStdout()

		if listMounts {
			table := msysmake.MountTablePath(args[0])
			f, err := fsys.Open(table)
			if err != nil {
				return fmt.Errorf("reading mount table: %w", err)
			}
			defer f.Close()

			for _, e := range msysmake.ScanMountTable(f) {
				fmt.Fprintf(out, "%s\t%s\n", e.Source, e.MountPoint)
			}
			return nil
		}

		dir, ok := msysmake.NewMountResolver(fsys).ResolveMount(args[0], mountPoint)
		if !ok {
			return fmt.Errorf("mount point %s not found in %s", mountPoint, msysmake.MountTablePath(args[0]))
		}
		fmt.Fprintln(out, dir)
		return nil
	},
}

func init() {
	mountCmd.Flags().StringVar(&mountPoint, "mount-point", msysmake.MinGWMountPoint, "mount point to resolve")
	mountCmd.Flags().BoolVar(&listMounts, "list", false, "list all mount table entries")
}
