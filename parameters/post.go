package parameters

import (
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/post"
	"github.com/filecoin-project/go-proofs/shared"
)

// WinningPoStSetupParams factors a winning configuration into per-partition
// setup parameters. A winning session spreads its challenges across the
// sectors it was configured with, so the challenge count must divide evenly
// by the sector count; the factored counts swap roles, challenging
// challengeCount/sectorCount sectors once each.
func WinningPoStSetupParams(cfg PoStConfig) (post.SetupParams, error) {
	if cfg.SectorCount == 0 || cfg.ChallengeCount%cfg.SectorCount != 0 {
		return post.SetupParams{}, shared.IndivisibleChallengeCountError{
			ChallengeCount: cfg.ChallengeCount,
			SectorCount:    cfg.SectorCount,
		}
	}

	paramSectorCount := cfg.ChallengeCount / cfg.SectorCount
	paramChallengeCount := cfg.ChallengeCount / paramSectorCount

	if paramSectorCount*paramChallengeCount != cfg.ChallengeCount {
		return post.SetupParams{}, shared.InternalInconsistencyError{
			SectorCount:    paramSectorCount,
			ChallengeCount: paramChallengeCount,
			Expected:       cfg.ChallengeCount,
		}
	}

	return post.SetupParams{
		SectorSize:     uint64(cfg.PaddedSectorSize()),
		ChallengeCount: paramChallengeCount,
		SectorCount:    paramSectorCount,
	}, nil
}

// WinningPoStPublicParams derives the winning-variant public parameters of
// a configuration, over the given tree shape.
func WinningPoStPublicParams(tree merkle.Tree, cfg PoStConfig) (post.PublicParams, error) {
	sp, err := WinningPoStSetupParams(cfg)
	if err != nil {
		return post.PublicParams{}, err
	}

	return post.NewFallbackPoSt(tree).Setup(sp)
}

// WindowPoStSetupParams carries a window configuration over into setup
// parameters unchanged. Window sessions prove every configured sector with
// the full per-sector challenge count, so there is nothing to factor and
// nothing to fail.
func WindowPoStSetupParams(cfg PoStConfig) post.SetupParams {
	return post.SetupParams{
		SectorSize:     uint64(cfg.PaddedSectorSize()),
		ChallengeCount: cfg.ChallengeCount,
		SectorCount:    cfg.SectorCount,
	}
}

// WindowPoStPublicParams derives the window-variant public parameters of a
// configuration, over the given tree shape.
func WindowPoStPublicParams(tree merkle.Tree, cfg PoStConfig) (post.PublicParams, error) {
	return post.NewFallbackPoSt(tree).Setup(WindowPoStSetupParams(cfg))
}
