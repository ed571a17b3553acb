package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	proofs "github.com/filecoin-project/go-proofs"
	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/crypto"
	"github.com/filecoin-project/go-proofs/parameters"
	"github.com/filecoin-project/go-proofs/shared"
)

var porepCmd = &cobra.Command{
	Use:   "porep",
	Short: "derive replication public parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		logger, err := newLogger(cfg.LogDebug)
		if err != nil {
			return err
		}
		logChangedFlags(logger)

		porepID, err := parsePoRepID(cfg.PoRepID)
		if err != nil {
			return err
		}

		tree, err := treeByName(cfg.Tree)
		if err != nil {
			return err
		}

		porepCfg := config.PoRepConfig{
			SectorSize: shared.SectorSize(cfg.SectorSize),
			Partitions: config.PoRepProofPartitions(cfg.Partitions),
			PoRepID:    porepID,
		}

		params, err := proofs.PoRepPublicParams(tree, porepCfg, proofs.WithLogger(logger))
		if err != nil {
			return err
		}

		fmt.Println(params.Identifier())
		if cfg.LogDebug {
			spew.Dump(params)
		}
		return nil
	},
}

var winningCmd = &cobra.Command{
	Use:   "winning",
	Short: "derive winning proof-of-spacetime public parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree, err := treeByName(cfg.Tree)
		if err != nil {
			return err
		}

		postCfg := proofs.DefaultWinningPoStConfig(shared.SectorSize(cfg.SectorSize))
		params, err := proofs.WinningPoStPublicParams(tree, postCfg)
		if err != nil {
			return err
		}

		fmt.Println(params.Identifier())
		if cfg.LogDebug {
			spew.Dump(params)
		}
		return nil
	},
}

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "derive window proof-of-spacetime public parameters",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		tree, err := treeByName(cfg.Tree)
		if err != nil {
			return err
		}

		postCfg, err := proofs.DefaultWindowPoStConfig(shared.SectorSize(cfg.SectorSize))
		if err != nil {
			return err
		}

		params, err := proofs.WindowPoStPublicParams(tree, postCfg)
		if err != nil {
			return err
		}

		fmt.Println(params.Identifier())
		if cfg.LogDebug {
			spew.Dump(params)
		}
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "derive the sampling seeds of a protocol identifier",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		porepID, err := parsePoRepID(cfg.PoRepID)
		if err != nil {
			return err
		}

		drgSeed := parameters.DRGSeedFromPoRepID(porepID)
		drSample := crypto.DerivePoRepDomainSeed(crypto.DRSampleTag, porepID)
		feistel := crypto.DerivePoRepDomainSeed(crypto.FeistelTag, porepID)

		fmt.Printf("porep-id: %v\n", porepID)
		fmt.Printf("drg seed: %v\n", drgSeed)
		fmt.Printf("%v: %x\n", crypto.DRSampleTag, drSample)
		fmt.Printf("%v: %x\n", crypto.FeistelTag, feistel)
		return nil
	},
}
