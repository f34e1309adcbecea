package toolsuite

import (
	"context"
	"strconv"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hermes-rf/cstmcp/engine"
	"github.com/hermes-rf/cstmcp/mcp"
	"github.com/hermes-rf/cstmcp/mcp/transport/localtransport"
	"github.com/hermes-rf/cstmcp/mocks/mockengine"
	"github.com/hermes-rf/cstmcp/resultcache"
)

func newMockProject(ctrl *gomock.Controller) (*engine.Project, *mockengine.MockBuildService, *mockengine.MockSolverService, *mockengine.MockResultsService, *mockengine.MockParameterService, *mockengine.MockProjectService) {
	build := mockengine.NewMockBuildService(ctrl)
	solver := mockengine.NewMockSolverService(ctrl)
	results := mockengine.NewMockResultsService(ctrl)
	params := mockengine.NewMockParameterService(ctrl)
	file := mockengine.NewMockProjectService(ctrl)
	prj := &engine.Project{
		Build:   build,
		Solver:  solver,
		Results: results,
		Params:  params,
		File:    file,
	}
	return prj, build, solver, results, params, file
}

func textOf(t *testing.T, res *mcp.ToolResponse) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	require.NotNil(t, res.Content[0].TextContent)
	return res.Content[0].TextContent.Text
}

func Test_RegisterAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, _, _, _, _, _ := newMockProject(ctrl)
	suite := NewSuite(prj, WithMaterialsDir("/opt/cst/materials"))

	// the server validates every handler signature on registration
	server := mcp.NewServer(localtransport.New())
	require.NoError(t, suite.RegisterAll(server))
	require.NoError(t, suite.RegisterResources(server))

	// re-registration replaces handlers in place
	require.NoError(t, suite.RegisterAll(server))
}

func Test_AddBrick_Forwards(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, build, _, _, _, _ := newMockProject(ctrl)
	suite := NewSuite(prj)

	exp := engine.Brick{
		Name:      "Patch",
		Component: "component1",
		Material:  "Copper (annealed)",
		XRange:    [2]float64{-10, 10},
		YRange:    [2]float64{-10, 10},
		ZRange:    [2]float64{0.6, 0.635},
	}
	build.EXPECT().AddBrick(gomock.Any(), exp).Return(nil)

	res, err := suite.addBrick(context.Background(), &AddBrickRequest{
		Name:      "Patch",
		Component: "component1",
		Material:  "Copper (annealed)",
		XRange:    [2]float64{-10, 10},
		YRange:    [2]float64{-10, 10},
		ZRange:    [2]float64{0.6, 0.635},
	})
	require.NoError(t, err)
	assert.Equal(t, "created brick Patch", textOf(t, res))
}

func Test_Validation_RejectsBeforeEngine(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, _, _, _, _, _ := newMockProject(ctrl)
	suite := NewSuite(prj)
	ctx := context.Background()

	// no EXPECT on any mock: a forwarded call would fail the test
	_, err := suite.addCylinder(ctx, &AddCylinderRequest{
		Name:      "Pin",
		Component: "Coax",
		Material:  "Copper (annealed)",
		ExtRad:    0.65,
		// orientation missing
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidArgument))

	_, err = suite.addDiscretePort(ctx, &AddDiscretePortRequest{Impedance: -50})
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidArgument))

	_, err = suite.setFrequencyRange(ctx, &SetFrequencyRangeRequest{FMin: 3, FMax: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidArgument))
}

func Test_Parameters(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, _, _, _, params, _ := newMockProject(ctrl)
	suite := NewSuite(prj)
	ctx := context.Background()

	params.EXPECT().AddParameter(gomock.Any(), "feedX", 2.5).Return(nil)
	res, err := suite.addParameter(ctx, &AddParameterRequest{Name: "feedX", Value: 2.5})
	require.NoError(t, err)
	assert.Equal(t, "added parameter feedX", textOf(t, res))

	params.EXPECT().ParameterExists(gomock.Any(), "feedX").Return(true, nil)
	res, err = suite.parameterExists(ctx, &ParameterRequest{Name: "feedX"})
	require.NoError(t, err)
	assert.Equal(t, "true", textOf(t, res))

	params.EXPECT().RetrieveParameter(gomock.Any(), "feedX").Return(2.5, nil)
	res, err = suite.retrieveParameter(ctx, &ParameterRequest{Name: "feedX"})
	require.NoError(t, err)
	assert.Equal(t, "2.5", textOf(t, res))

	params.EXPECT().RetrieveParameter(gomock.Any(), "missing").
		Return(0.0, errors.New("parameter missing does not exist"))
	_, err = suite.retrieveParameter(ctx, &ParameterRequest{Name: "missing"})
	assert.EqualError(t, err, "parameter missing does not exist")
}

func Test_RunSimulation_InvalidatesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, _, solver, results, _, _ := newMockProject(ctrl)

	cache := resultcache.NewMemoryCache()
	suite := NewSuite(prj, WithResultCache(cache, "memory"))
	ctx := context.Background()

	var req engine.FarFieldRequest
	results.EXPECT().FarField(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r engine.FarFieldRequest) ([]float64, error) {
			req = r
			return []float64{3.0, 3.0}, nil
		})

	// first query populates the cache
	res, err := suite.getGainAtFreq(ctx, &BoresightMetricRequest{})
	require.NoError(t, err)
	gain, err := strconv.ParseFloat(textOf(t, res), 64)
	require.NoError(t, err)
	assert.InDelta(t, 6.0103, gain, 1e-4)
	assert.InDelta(t, 0.868, req.Frequency, 0)
	assert.Equal(t, 1, req.Port)

	// second identical query never reaches the engine
	res, err = suite.getGainAtFreq(ctx, &BoresightMetricRequest{})
	require.NoError(t, err)
	gain2, err := strconv.ParseFloat(textOf(t, res), 64)
	require.NoError(t, err)
	assert.InDelta(t, gain, gain2, 0)

	// a solver run drops the cache; the next query hits the engine again
	solver.EXPECT().SolverType(gomock.Any()).Return("HF Time Domain", nil)
	solver.EXPECT().Run(gomock.Any()).Return(nil)
	res, err = suite.runSimulation(ctx, &EmptyRequest{})
	require.NoError(t, err)
	assert.Equal(t, "simulation finished", textOf(t, res))

	results.EXPECT().FarField(gomock.Any(), gomock.Any()).Return([]float64{2.0, 2.0}, nil)
	_, err = suite.getGainAtFreq(ctx, &BoresightMetricRequest{})
	require.NoError(t, err)
}

func Test_GetFarField_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, _, _, results, _, _ := newMockProject(ctrl)
	suite := NewSuite(prj)
	ctx := context.Background()

	var req engine.FarFieldRequest
	results.EXPECT().FarField(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r engine.FarFieldRequest) ([]float64, error) {
			req = r
			return []float64{5.25}, nil
		})

	res, err := suite.getFarField(ctx, &GetFarFieldRequest{
		Frequency:  0.868,
		Theta:      []float64{0},
		Phi:        []float64{0},
		Components: []string{"theta"},
	})
	require.NoError(t, err)
	assert.Equal(t, "[5.25]", textOf(t, res))

	assert.Equal(t, 1, req.Port)
	assert.Equal(t, engine.PlotRealizedGain, req.Quantity)
	assert.Equal(t, engine.CoordSpherical, req.CoordSystem)
	require.Len(t, req.ComponentForms, 1)
	assert.Equal(t, engine.FormAbs, req.ComponentForms[0])

	// mismatched angle vectors are rejected before the engine call
	_, err = suite.getFarField(ctx, &GetFarFieldRequest{
		Frequency:  0.868,
		Theta:      []float64{0, 90},
		Phi:        []float64{0},
		Components: []string{"theta"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrInvalidArgument))
}

func Test_EngineFailure_Propagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	prj, build, _, _, _, _ := newMockProject(ctrl)
	suite := NewSuite(prj)

	build.EXPECT().BooleanAdd(gomock.Any(), "a:s1", "a:s2").
		Return(engine.WrapEngineFailure(errors.New("COM call failed"), "boolean add"))

	_, err := suite.booleanAdd(context.Background(), &BooleanRequest{Target: "a:s1", Tool: "a:s2"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, engine.ErrEngineFailure))
	assert.Contains(t, err.Error(), "COM call failed")
}

func Test_CoaxFeedDefaults(t *testing.T) {
	req := &CreateCoaxAndPortRequest{XFeed: 1.5, FeedZTop: 0.8}
	feed := req.feed()
	assert.InDelta(t, 1.5, feed.XFeed, 0)
	assert.InDelta(t, 0.8, feed.FeedZTop, 0)
	assert.InDelta(t, -3.0, feed.FeedZBot, 0)
	assert.Equal(t, "Coax", feed.CoaxComponent)
	assert.True(t, feed.MakeGroundCut)

	off := false
	req.MakeGroundCut = &off
	assert.False(t, req.feed().MakeGroundCut)
}
