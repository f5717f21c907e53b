// Package integration exercises a full scene lifecycle against the SQLite
// backend: create links, apply joint constraints, verify persisted records,
// check type consistency, and attach motors.
package integration

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-robotics/linksmith/internal/ops"
	"github.com/mesh-robotics/linksmith/internal/sqlite"
	"github.com/mesh-robotics/linksmith/pkg/joints"
	"github.com/mesh-robotics/linksmith/pkg/model"
)

// setupScene attaches a fresh backend under a temp directory and returns the
// links table. Detach runs as test cleanup.
func setupScene(t *testing.T) model.Table {
	t.Helper()

	b := sqlite.NewBackend()
	config := model.Config{
		Backend: model.BackendSQLite,
		DataDir: t.TempDir(),
	}
	require.NoError(t, b.Attach(config))
	t.Cleanup(func() { b.Detach() })

	tbl, err := b.GetTable(model.LinksTable)
	require.NoError(t, err)
	return tbl
}

// fetchAll reloads every link from the table, ordered by creation time.
func fetchAll(t *testing.T, tbl model.Table) []*model.Link {
	t.Helper()

	rows, err := tbl.Fetch(nil)
	require.NoError(t, err)

	links := make([]*model.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, row.(*model.Link))
	}
	return links
}

func TestSceneLifecycle(t *testing.T) {
	tbl := setupScene(t)

	// Populate the scene: two articulated links and one sensor mount.
	seed := []*model.Link{
		{Name: "shoulder", Role: model.RoleLink, Bone: model.Bone{Direction: model.Vector3{Y: 1}}},
		{Name: "elbow", Role: model.RoleLink, Bone: model.Bone{Direction: model.Vector3{Y: 1}}},
		{Name: "camera_mount", Role: model.RoleSensor, Bone: model.Bone{Direction: model.Vector3{Z: 1}}},
	}
	for _, l := range seed {
		_, err := tbl.Set("", l)
		require.NoError(t, err)
	}

	// Apply revolute joints to the two articulated links.
	links := fetchAll(t, tbl)
	require.Len(t, links, 3)

	sel := &ops.Selection{Links: links[:2]}
	results := ops.ApplyJointConstraints(sel, ops.ApplyParams{
		JointType:   model.JointRevolute,
		Degrees:     true,
		Lower:       -90,
		Upper:       90,
		MaxEffort:   40,
		MaxVelocity: 2,
	})
	require.Len(t, results, 2)
	for _, res := range results {
		require.NoError(t, res.Err)
		_, err := tbl.Set(res.LinkID, findByID(links, res.LinkID))
		require.NoError(t, err)
	}

	// Reload and derive the joint records from the persisted constraints.
	links = fetchAll(t, tbl)
	for _, link := range links[:2] {
		rec, err := joints.DeriveJointRecord(link)
		require.NoError(t, err, "deriving joint for %s", link.Name)
		assert.Equal(t, model.JointRevolute, rec.Type)
		require.Len(t, rec.Limits, 2)
		assert.InDelta(t, -math.Pi/2, rec.Limits[0], 1e-9)
		assert.InDelta(t, math.Pi/2, rec.Limits[1], 1e-9)
		assert.Equal(t, 40.0, rec.MaxEffort)
		assert.Equal(t, 2.0, rec.MaxVelocity)
	}

	// The sensor mount has no constraints and derives as floating.
	rec, err := joints.DeriveJointRecord(links[2])
	require.NoError(t, err)
	assert.Equal(t, model.JointFloating, rec.Type)

	// Consistency check over the whole scene: no mismatches.
	sel = &ops.Selection{Links: links}
	reports := ops.CheckJointTypes(sel, false)
	require.Len(t, reports, 3)
	for _, rep := range reports[:2] {
		assert.False(t, rep.Mismatch, "link %s", rep.Name)
	}

	// Attach motors; only the articulated links receive one.
	results = ops.AttachMotors(sel, model.MotorParams{
		Type:     model.MotorPID,
		P:        20,
		I:        0.5,
		D:        0.1,
		VmaxRPM:  30,
		TaumaxNm: 40,
	})
	require.Len(t, results, 3)
	for _, res := range results {
		if res.Skipped {
			continue
		}
		_, err := tbl.Set(res.LinkID, findByID(links, res.LinkID))
		require.NoError(t, err)
	}

	links = fetchAll(t, tbl)
	assert.InDelta(t, 30*2*math.Pi, links[0].MetaFloat(model.MetaMotorMaxSpeed), 1e-9)
	_, hasMotor := links[2].Meta(model.MetaMotorType)
	assert.False(t, hasMotor, "sensor mount must not carry a motor")
}

func TestSceneRetype(t *testing.T) {
	tbl := setupScene(t)

	link := &model.Link{
		Name: "slider",
		Role: model.RoleLink,
		Bone: model.Bone{Direction: model.Vector3{Y: 1}},
	}
	id, err := tbl.Set("", link)
	require.NoError(t, err)

	// First pass: prismatic.
	sel := &ops.Selection{Links: []*model.Link{link}}
	results := ops.ApplyJointConstraints(sel, ops.ApplyParams{
		JointType: model.JointPrismatic,
		Lower:     -0.1,
		Upper:     0.1,
	})
	require.NoError(t, results[0].Err)
	_, err = tbl.Set(id, link)
	require.NoError(t, err)

	// Second pass: rework the same link into a fixed joint. The stored type
	// metadata must follow.
	reloaded := fetchAll(t, tbl)[0]
	sel = &ops.Selection{Links: []*model.Link{reloaded}}
	results = ops.ApplyJointConstraints(sel, ops.ApplyParams{JointType: model.JointFixed})
	require.NoError(t, results[0].Err)
	_, err = tbl.Set(id, reloaded)
	require.NoError(t, err)

	final := fetchAll(t, tbl)[0]
	assert.Equal(t, string(model.JointFixed), final.MetaString(model.MetaJointType))

	rec, err := joints.DeriveJointRecord(final)
	require.NoError(t, err)
	assert.Equal(t, model.JointFixed, rec.Type)
	assert.Nil(t, rec.Axis)
	assert.Nil(t, rec.Limits)
}

func TestSceneStaleTypeRepair(t *testing.T) {
	tbl := setupScene(t)

	link := &model.Link{
		Name: "hinge",
		Role: model.RoleLink,
		Bone: model.Bone{Direction: model.Vector3{Y: 1}},
	}
	id, err := tbl.Set("", link)
	require.NoError(t, err)

	// Synthesize fixed constraints, then hand-edit the stored type so it
	// disagrees with the constraint state.
	require.NoError(t, joints.Synthesize(link, model.JointFixed, 0, 0))
	link.SetMeta(model.MetaJointType, string(model.JointContinuous))
	_, err = tbl.Set(id, link)
	require.NoError(t, err)

	reloaded := fetchAll(t, tbl)[0]
	sel := &ops.Selection{Links: []*model.Link{reloaded}}

	reports := ops.CheckJointTypes(sel, true)
	require.Len(t, reports, 1)
	assert.True(t, reports[0].Mismatch)
	assert.True(t, reports[0].Adjusted)

	_, err = tbl.Set(id, reloaded)
	require.NoError(t, err)

	final := fetchAll(t, tbl)[0]
	assert.Equal(t, string(model.JointFixed), final.MetaString(model.MetaJointType))
}

// findByID returns the link with the given ID from links, or nil.
func findByID(links []*model.Link, id string) *model.Link {
	for _, l := range links {
		if l.LinkID == id {
			return l
		}
	}
	return nil
}
