package main

import (
	"flag"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/bezpad/pkg/bezier"
	"github.com/gucio321/bezpad/pkg/viewer"
	"github.com/gucio321/bezpad/pkg/workspace"
)

type Flags struct {
	Workspace      string
	LegacyWeights  bool
	Debug          bool
	ListWorkspaces bool
}

func main() {
	var f Flags
	flag.StringVar(&f.Workspace, "workspace", workspace.DefaultName, "canvas preset (see -list-workspaces)")
	flag.BoolVar(&f.LegacyWeights, "legacy-weights", false, "weight every middle term by the curve degree instead of the binomial coefficient")
	flag.BoolVar(&f.Debug, "debug", false, "debug logging")
	flag.BoolVar(&f.ListWorkspaces, "list-workspaces", false, "print available canvas presets and exit")
	flag.Parse()

	if !f.Debug {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if f.ListWorkspaces {
		all, err := workspace.All()
		if err != nil {
			glg.Fatalf("Unable to list workspaces: %v", err)
		}

		for _, w := range all {
			fmt.Printf("%s\t%dx%d\t%s\n", w.Name, w.Width, w.Height, w.Description)
		}

		return
	}

	ws, err := workspace.Get(f.Workspace)
	if err != nil {
		glg.Fatalf("Cannot load workspace: %v", err)
	}

	weighting := bezier.WeightBinomial
	if f.LegacyWeights {
		weighting = bezier.WeightDegree
	}

	glg.Infof("Starting on %s workspace (%dx%d), %v weighting", ws.Name, ws.Width, ws.Height, weighting)

	ebiten.SetWindowSize(ws.Width, ws.Height)
	ebiten.SetWindowTitle("bezpad")
	ebiten.SetTPS(viewer.TPS)

	if err := ebiten.RunGame(viewer.NewViewer(ws.Width, ws.Height, weighting)); err != nil {
		glg.Fatalf("Cannot run viewer: %v", err)
	}
}
