package datasets

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurlang/trainlabels/logger"
)

func quiet(m *Memory) *Memory {
	m.Logger = logger.Nop()
	return m
}

func TestFromExamples(t *testing.T) {
	t.Run("Should columnize examples into batches", func(t *testing.T) {
		m := FromExamples([]Example{
			{"input_ids": []int{1, 2}, "labels": 0},
			{"input_ids": []int{3}, "labels": 1},
			{"input_ids": []int{4}},
		}, 2)
		require.Equal(t, 2, m.Len())
		want := []Batch{
			{"input_ids": []any{[]int{1, 2}, []int{3}}, "labels": []any{0, 1}},
			{"input_ids": []any{[]int{4}}, "labels": []any{nil}},
		}
		if diff := cmp.Diff(want, m.Batches()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should use the default batch size", func(t *testing.T) {
		var examples = make([]Example, DefaultBatchSize+1)
		for i := range examples {
			examples[i] = Example{"labels": i}
		}
		assert.Equal(t, 2, FromExamples(examples, 0).Len())
	})

	t.Run("Should produce no batches from no examples", func(t *testing.T) {
		assert.Equal(t, 0, FromExamples(nil, 10).Len())
	})
}

func TestMemoryMap(t *testing.T) {
	double := func(b Batch) (Batch, error) {
		var o []any
		for _, v := range b["x"].([]any) {
			o = append(o, v.(int)*2)
		}
		return Batch{"x": o}, nil
	}

	t.Run("Should overwrite returned fields and keep the rest", func(t *testing.T) {
		m := quiet(NewMemory(
			Batch{"x": []any{1, 2}, "y": []any{"a", "b"}},
			Batch{"x": []any{3}, "y": []any{"c"}},
		))
		ds, err := m.Map(double, MapOptions{Batched: true, Threads: 2})
		require.NoError(t, err)
		want := []Batch{
			{"x": []any{2, 4}, "y": []any{"a", "b"}},
			{"x": []any{6}, "y": []any{"c"}},
		}
		if diff := cmp.Diff(want, ds.(*Memory).Batches()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should not modify the receiver", func(t *testing.T) {
		m := quiet(NewMemory(Batch{"x": []any{1}}))
		_, err := m.Map(double, MapOptions{Batched: true})
		require.NoError(t, err)
		assert.Equal(t, []Batch{{"x": []any{1}}}, m.Batches())
	})

	t.Run("Should return the first failing batch error", func(t *testing.T) {
		boom := errors.New("boom")
		m := quiet(NewMemory(Batch{"x": 1}, Batch{"x": 2}, Batch{"x": 3}))
		ds, err := m.Map(func(b Batch) (Batch, error) {
			if b["x"] != 1 {
				return nil, boom
			}
			return b, nil
		}, MapOptions{Batched: true, Desc: "Processing", Threads: 3})
		require.Error(t, err)
		assert.Nil(t, ds)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "Processing: batch 1")
	})

	t.Run("Should map single examples when not batched", func(t *testing.T) {
		m := quiet(NewMemory(Batch{"x": []int{1, 2, 3}, "y": []string{"a", "b", "c"}}))
		ds, err := m.Map(func(ex Batch) (Batch, error) {
			return Batch{"x": ex["x"].(int) + 10, "z": ex["y"]}, nil
		}, MapOptions{})
		require.NoError(t, err)
		want := []Batch{{
			"x": []any{11, 12, 13},
			"y": []string{"a", "b", "c"},
			"z": []any{"a", "b", "c"},
		}}
		if diff := cmp.Diff(want, ds.(*Memory).Batches()); diff != "" {
			t.Errorf("batches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("Should reject ragged batches when not batched", func(t *testing.T) {
		m := quiet(NewMemory(Batch{"x": []any{1, 2}, "y": []any{1}}))
		_, err := m.Map(double, MapOptions{})
		assert.ErrorIs(t, err, ErrRaggedBatch)

		m = quiet(NewMemory(Batch{"x": 5}))
		_, err = m.Map(double, MapOptions{})
		assert.ErrorIs(t, err, ErrRaggedBatch)
	})

	t.Run("Should log the description", func(t *testing.T) {
		var rec recorder
		m := NewMemory(Batch{"x": []any{1}})
		m.Logger = &rec
		ds, err := m.Map(double, MapOptions{Batched: true, Desc: "Processing training dataset", Threads: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Processing training dataset"}, rec.msgs)
		assert.Same(t, m.Logger, ds.(*Memory).Logger)
	})
}

func TestSequenceLen(t *testing.T) {
	for _, tc := range []struct {
		v   any
		n   int
		seq bool
	}{
		{[]any{1, 2}, 2, true},
		{[]int{1}, 1, true},
		{[2]string{"a", "b"}, 2, true},
		{[]int(nil), 0, true},
		{5, 0, false},
		{"abc", 0, false},
		{nil, 0, false},
		{map[string]int{"a": 1}, 0, false},
	} {
		n, ok := SequenceLen(tc.v)
		assert.Equal(t, tc.seq, ok, "%#v", tc.v)
		assert.Equal(t, tc.n, n, "%#v", tc.v)
		assert.Equal(t, tc.seq, IsSequence(tc.v), "%#v", tc.v)
	}
}

type recorder struct {
	msgs []string
}

func (r *recorder) Debug(msg string, _ ...any) {}
func (r *recorder) Info(msg string, _ ...any)  { r.msgs = append(r.msgs, msg) }
func (r *recorder) Warn(msg string, _ ...any)  {}
func (r *recorder) Error(msg string, _ ...any) {}
