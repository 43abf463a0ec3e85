package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/productionplan/core/model"
)

type recordSink struct {
	plans   int
	rejects int
	err     error
}

func (r *recordSink) RecordPlan(PlanRecord) error {
	r.plans++
	return r.err
}

func (r *recordSink) RecordReject(RejectRecord) error {
	r.rejects++
	return nil
}

type planOnly struct{ plans int }

func (p *planOnly) RecordPlan(PlanRecord) error {
	p.plans++
	return nil
}

func TestMultiSink(t *testing.T) {
	s1 := &recordSink{}
	s2 := &planOnly{}
	m := NewMultiSink(s1, s2)
	require.NoError(t, m.RecordPlan(PlanRecord{}))
	require.NoError(t, m.RecordReject(RejectRecord{Reason: "missing"}))
	assert.Equal(t, 1, s1.plans)
	assert.Equal(t, 1, s1.rejects)
	assert.Equal(t, 1, s2.plans)
}

func TestMultiSink_ContinuesAfterError(t *testing.T) {
	boom := errors.New("boom")
	s1 := &recordSink{err: boom}
	s2 := &planOnly{}
	err := NewMultiSink(s1, s2).RecordPlan(PlanRecord{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, s2.plans)
}

func TestNewPlanRecord(t *testing.T) {
	gas := model.Unit{Name: "g", Kind: model.KindGasFired}
	plan := model.Plan{
		ID:          "id-1",
		Load:        100,
		Committed:   100,
		Allocations: []model.Allocation{{Unit: gas, Output: 100, Cost: 20, CostKnown: true}},
		Corrections: []model.Correction{{Unit: "g"}},
	}
	at := time.Unix(10, 0)
	rec := NewPlanRecord(plan, "headroom", at)
	assert.Equal(t, "id-1", rec.PlanID)
	assert.Equal(t, at, rec.Time)
	assert.Equal(t, 1, rec.Corrections)
	require.Len(t, rec.Units, 1)
	assert.Equal(t, UnitOutput{Name: "g", Kind: "gasfired", Output: 100, Cost: 20, CostKnown: true}, rec.Units[0])
}
