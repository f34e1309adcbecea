// Package assemblies composes multiple modeler operations into reusable
// antenna building blocks.
package assemblies

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/hermes-rf/cstmcp/engine"
)

// CoaxFeed describes a vertical coaxial feed: an inner pin penetrating
// the ground plane, a dielectric sleeve, a metallic shield, and a
// waveguide port at the bottom face. Dimensions are in project geometry
// units.
type CoaxFeed struct {
	XFeed           float64 `json:"xfeed"`
	YFeed           float64 `json:"yfeed"`
	FeedZBot        float64 `json:"feedZBot"`
	FeedZTop        float64 `json:"feedZTop"`
	InnerConnRad    float64 `json:"innerConnRad"`
	ConSubOuterRad  float64 `json:"consubOuterRad"`
	OuterShieldRad  float64 `json:"outerShieldOuterRad"`
	CoaxComponent   string  `json:"coaxComponent"`
	InnerName       string  `json:"innerName"`
	ConSubName      string  `json:"consubName"`
	OuterName       string  `json:"outerName"`
	InnerMaterial   string  `json:"innerMat"`
	ConSubMaterial  string  `json:"consubMat"`
	OuterMaterial   string  `json:"outerMat"`
	MakeGroundCut   bool    `json:"makeGroundCut"`
	GroundComponent string  `json:"groundComponent"`
	NModes          int     `json:"nModes"`
	PortOrientation string  `json:"orientation"`
}

// DefaultCoaxFeed returns the 50 Ohm SMA-like feed the reference antenna
// projects use.
func DefaultCoaxFeed() CoaxFeed {
	return CoaxFeed{
		FeedZBot:        -3.0,
		FeedZTop:        0.6,
		InnerConnRad:    0.65,
		ConSubOuterRad:  2.05,
		OuterShieldRad:  3.0,
		CoaxComponent:   "Coax",
		InnerName:       "InnerConn",
		ConSubName:      "ConSubstrate",
		OuterName:       "OuterShield",
		InnerMaterial:   "Copper (annealed)",
		ConSubMaterial:  "PTFE (lossy)",
		OuterMaterial:   "Copper (annealed)",
		MakeGroundCut:   true,
		GroundComponent: "component1:Groundplane",
		NModes:          1,
		PortOrientation: "zmin",
	}
}

// CreateCoaxAndPort builds the coax solids, optionally cuts an opening in
// the ground solid, and defines the waveguide port. The project is
// modified in place; on failure the model may hold a partial feed.
func CreateCoaxAndPort(ctx context.Context, prj *engine.Project, feed CoaxFeed) error {
	if prj == nil || prj.Build == nil || prj.Solver == nil {
		return engine.InvalidArgumentf("project must be provided")
	}
	if feed.InnerConnRad <= 0 || feed.ConSubOuterRad <= feed.InnerConnRad ||
		feed.OuterShieldRad <= feed.ConSubOuterRad {
		return engine.OutOfRangef("coax radii must satisfy 0 < inner < dielectric < shield")
	}
	if feed.FeedZTop <= feed.FeedZBot {
		return engine.OutOfRangef("feed top must be above feed bottom")
	}

	// Required materials come from the studio library.
	for _, mat := range []string{feed.InnerMaterial, feed.ConSubMaterial, feed.OuterMaterial} {
		if err := prj.Build.AddMaterialFromLibrary(ctx, mat); err != nil {
			return errors.WithMessagef(err, "failed to load material %q", mat)
		}
	}

	if err := ensureComponent(ctx, prj, feed.CoaxComponent); err != nil {
		return err
	}

	cylinders := []engine.Cylinder{
		{
			// inner pin, spanning the full penetration depth
			Name:      feed.InnerName,
			Component: feed.CoaxComponent,
			Material:  feed.InnerMaterial,
			XMin:      feed.XFeed,
			YMin:      feed.YFeed,
			ZMin:      feed.FeedZBot,
			ZMax:      feed.FeedZTop,
			ExtRad:    feed.InnerConnRad,
		},
		{
			// dielectric sleeve, stopping at the ground reference plane
			Name:      feed.ConSubName,
			Component: feed.CoaxComponent,
			Material:  feed.ConSubMaterial,
			XMin:      feed.XFeed,
			YMin:      feed.YFeed,
			ZMin:      feed.FeedZBot,
			ZMax:      0,
			ExtRad:    feed.ConSubOuterRad,
			IntRad:    feed.InnerConnRad,
		},
		{
			// outer shield, terminating at the ground plane
			Name:      feed.OuterName,
			Component: feed.CoaxComponent,
			Material:  feed.OuterMaterial,
			XMin:      feed.XFeed,
			YMin:      feed.YFeed,
			ZMin:      feed.FeedZBot,
			ZMax:      0,
			ExtRad:    feed.OuterShieldRad,
			IntRad:    feed.ConSubOuterRad,
		},
	}
	for i := range cylinders {
		cylinders[i].Orientation = "z"
		if err := prj.Build.AddCylinder(ctx, cylinders[i]); err != nil {
			return errors.WithMessagef(err, "failed to create solid %q", cylinders[i].Name)
		}
	}

	if feed.MakeGroundCut {
		cutName := "CoaxCut"
		err := prj.Build.AddCylinder(ctx, engine.Cylinder{
			Name:        cutName,
			Component:   feed.CoaxComponent,
			Material:    "Vacuum",
			XMin:        feed.XFeed,
			YMin:        feed.YFeed,
			ZMin:        feed.FeedZBot,
			ZMax:        feed.FeedZTop,
			ExtRad:      feed.OuterShieldRad,
			Orientation: "z",
		})
		if err != nil {
			return errors.WithMessage(err, "failed to create ground cut tool")
		}
		err = prj.Build.BooleanSubtract(ctx, feed.GroundComponent, feed.CoaxComponent+":"+cutName)
		if err != nil {
			return errors.WithMessage(err, "failed to cut ground opening")
		}
	}

	err := prj.Solver.AddWaveguidePort(ctx, engine.WaveguidePort{
		XMin:        feed.XFeed - feed.OuterShieldRad,
		XMax:        feed.XFeed + feed.OuterShieldRad,
		YMin:        feed.YFeed - feed.OuterShieldRad,
		YMax:        feed.YFeed + feed.OuterShieldRad,
		ZMin:        feed.FeedZBot,
		ZMax:        feed.FeedZBot,
		Orientation: feed.PortOrientation,
		NModes:      feed.NModes,
	})
	return errors.WithMessage(err, "failed to define coax port")
}

// ensureComponent creates the component unless it already exists.
func ensureComponent(ctx context.Context, prj *engine.Project, name string) error {
	exists, err := prj.Build.ComponentExists(ctx, name)
	if err != nil {
		return errors.WithMessagef(err, "failed to check component %q", name)
	}
	if exists {
		return nil
	}
	return errors.WithMessagef(prj.Build.NewComponent(ctx, name), "failed to create component %q", name)
}
