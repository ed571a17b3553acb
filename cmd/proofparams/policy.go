package main

import (
	"fmt"
	"os"
	"strconv"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	proofs "github.com/filecoin-project/go-proofs"
	"github.com/filecoin-project/go-proofs/shared"
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "print the registered proving policy",
	RunE: func(cmd *cobra.Command, args []string) error {
		policy := proofs.DefaultPoRepPolicy()

		data := make([][]string, 0)
		for _, size := range policy.SectorSizes() {
			entry, _ := policy.Lookup(size)
			winning := proofs.DefaultWinningPoStConfig(size)

			row := []string{
				bytefmt.ByteSize(uint64(size)),
				strconv.FormatUint(entry.MinChallenges, 10),
				strconv.FormatUint(uint64(entry.Layers), 10),
				strconv.FormatUint(winning.ChallengeCount, 10),
				strconv.FormatUint(winning.SectorCount, 10),
			}

			if window, err := proofs.DefaultWindowPoStConfig(size); err == nil {
				row = append(row,
					strconv.FormatUint(window.ChallengeCount, 10),
					strconv.FormatUint(window.SectorCount, 10))
			} else {
				row = append(row, "-", "-")
			}

			data = append(data, row)
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"sector size", "porep challenges", "layers",
			"winning challenges", "winning sectors",
			"window challenges", "window sectors",
		})
		table.SetBorder(true)
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [count]",
	Short: "check whether sectors fit in the data directory's free space",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		count := uint64(1)
		if len(args) == 1 {
			count, err = strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid count: %v", err)
			}
		}

		size := shared.SectorSize(cfg.SectorSize)
		available := shared.AvailableSpace(cfg.DataDir)

		fmt.Printf("datadir: %v\n", cfg.DataDir)
		fmt.Printf("available: %v\n", bytefmt.ByteSize(available))

		if !shared.CanFitSectors(cfg.DataDir, size, count) {
			return fmt.Errorf("%d sectors of %v do not fit; available: %v",
				count, size, bytefmt.ByteSize(available))
		}

		fmt.Printf("%d sectors of %v fit\n", count, size)
		return nil
	},
}
