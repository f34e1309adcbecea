package toolsuite

import (
	"context"

	"github.com/hermes-rf/cstmcp/assemblies"
	"github.com/hermes-rf/cstmcp/mcp"
)

// CreateCoaxAndPortRequest builds a vertical coaxial feed. Omitted fields
// fall back to the 50 Ohm SMA-like defaults of the reference antenna
// projects.
type CreateCoaxAndPortRequest struct {
	XFeed           float64 `json:"xfeed" jsonschema:"description=Feed axis X position."`
	YFeed           float64 `json:"yfeed" jsonschema:"description=Feed axis Y position."`
	FeedZBot        float64 `json:"feedZBot" jsonschema:"description=Bottom of the feed (default -3)."`
	FeedZTop        float64 `json:"feedZTop" jsonschema:"description=Top of the inner pin (default 0.6)."`
	InnerConnRad    float64 `json:"innerConnRad" jsonschema:"description=Inner pin radius (default 0.65)." validate:"gte=0"`
	ConSubOuterRad  float64 `json:"consubOuterRad" jsonschema:"description=Dielectric sleeve outer radius (default 2.05)." validate:"gte=0"`
	OuterShieldRad  float64 `json:"outerShieldOuterRad" jsonschema:"description=Shield outer radius (default 3.0)." validate:"gte=0"`
	CoaxComponent   string  `json:"coaxComponent" jsonschema:"description=Component receiving the feed solids (default Coax)."`
	InnerMaterial   string  `json:"innerMat" jsonschema:"description=Inner pin material (default Copper (annealed))."`
	ConSubMaterial  string  `json:"consubMat" jsonschema:"description=Dielectric material (default PTFE (lossy))."`
	OuterMaterial   string  `json:"outerMat" jsonschema:"description=Shield material (default Copper (annealed))."`
	MakeGroundCut   *bool   `json:"makeGroundCut" jsonschema:"description=Cut an opening for the feed in the ground solid (default true)."`
	GroundComponent string  `json:"groundComponent" jsonschema:"description=Ground solid to cut (default component1:Groundplane)."`
	NModes          int     `json:"nModes" jsonschema:"description=Number of port modes (default 1)." validate:"gte=0"`
	PortOrientation string  `json:"orientation" jsonschema:"description=Face carrying the port (default zmin)." validate:"omitempty,oneof=xmin xmax ymin ymax zmin zmax"`
}

func (req *CreateCoaxAndPortRequest) feed() assemblies.CoaxFeed {
	feed := assemblies.DefaultCoaxFeed()
	feed.XFeed = req.XFeed
	feed.YFeed = req.YFeed
	if req.FeedZBot != 0 {
		feed.FeedZBot = req.FeedZBot
	}
	if req.FeedZTop != 0 {
		feed.FeedZTop = req.FeedZTop
	}
	if req.InnerConnRad != 0 {
		feed.InnerConnRad = req.InnerConnRad
	}
	if req.ConSubOuterRad != 0 {
		feed.ConSubOuterRad = req.ConSubOuterRad
	}
	if req.OuterShieldRad != 0 {
		feed.OuterShieldRad = req.OuterShieldRad
	}
	if req.CoaxComponent != "" {
		feed.CoaxComponent = req.CoaxComponent
	}
	if req.InnerMaterial != "" {
		feed.InnerMaterial = req.InnerMaterial
	}
	if req.ConSubMaterial != "" {
		feed.ConSubMaterial = req.ConSubMaterial
	}
	if req.OuterMaterial != "" {
		feed.OuterMaterial = req.OuterMaterial
	}
	if req.MakeGroundCut != nil {
		feed.MakeGroundCut = *req.MakeGroundCut
	}
	if req.GroundComponent != "" {
		feed.GroundComponent = req.GroundComponent
	}
	if req.NModes != 0 {
		feed.NModes = req.NModes
	}
	if req.PortOrientation != "" {
		feed.PortOrientation = req.PortOrientation
	}
	return feed
}

func (s *Suite) createCoaxAndPort(ctx context.Context, req *CreateCoaxAndPortRequest) (*mcp.ToolResponse, error) {
	return s.exec(ctx, "create_coax_and_port", req, ok("coax feed and port created", func(ctx context.Context) error {
		return assemblies.CreateCoaxAndPort(ctx, s.prj, req.feed())
	}))
}
