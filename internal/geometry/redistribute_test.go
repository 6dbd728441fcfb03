package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedistribute(t *testing.T) {
	tests := []struct {
		name          string
		index         int
		pan           float64
		snapshot      []float64
		wantSizes     []float64
		wantRemainder float64
	}{
		{
			name:      "zero pan returns snapshot",
			index:     1,
			pan:       0,
			snapshot:  []float64{100, 200, 100},
			wantSizes: []float64{100, 200, 100},
		},
		{
			name:          "pan toward start hits floor on first sibling",
			index:         0,
			pan:           -50,
			snapshot:      []float64{100, 200, 100},
			wantSizes:     []float64{80, 220, 100},
			wantRemainder: 30,
		},
		{
			name:      "pan toward start within slack",
			index:     0,
			pan:       -15,
			snapshot:  []float64{100, 200, 100},
			wantSizes: []float64{85, 215, 100},
		},
		{
			name:      "pan toward start carries into earlier siblings",
			index:     1,
			pan:       -100,
			snapshot:  []float64{200, 100, 100},
			wantSizes: []float64{120, 80, 200},
		},
		{
			name:      "pan toward end shrinks siblings after divider",
			index:     0,
			pan:       40,
			snapshot:  []float64{100, 200, 100},
			wantSizes: []float64{140, 160, 100},
		},
		{
			name:          "pan toward end carries past floors",
			index:         0,
			pan:           150,
			snapshot:      []float64{100, 200, 100},
			wantSizes:     []float64{240, 80, 80},
			wantRemainder: 10,
		},
		{
			name:          "every candidate at floor",
			index:         1,
			pan:           60,
			snapshot:      []float64{100, 100, 80},
			wantSizes:     []float64{100, 100, 80},
			wantRemainder: 60,
		},
		{
			name:          "sibling below floor is raised to floor",
			index:         0,
			pan:           10,
			snapshot:      []float64{100, 50, 100},
			wantSizes:     []float64{90, 80, 80},
			wantRemainder: 20,
		},
		{
			name:     "sibling below floor is raised to floor toward start",
			index:    0,
			pan:      -10,
			snapshot: []float64{50, 200},
			// raising 50 to 80 is owed by the growing sibling, which ends
			// up below its snapshot
			wantSizes:     []float64{80, 170},
			wantRemainder: 40,
		},
		{
			name:      "pan toward end on last divider has nothing to take",
			index:     2,
			pan:       30,
			snapshot:  []float64{100, 100, 100},
			wantSizes: []float64{100, 100, 100},
			// the whole pan is unmet
			wantRemainder: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Redistribute(tt.index, tt.pan, tt.snapshot, DefaultMinSize)
			require.NoError(t, err)

			assert.InDeltaSlice(t, tt.wantSizes, got.NextSizes, 1e-9)
			assert.InDelta(t, tt.wantRemainder, got.Remainder, 1e-9)
		})
	}
}

func TestRedistributeDoesNotModifySnapshot(t *testing.T) {
	snapshot := []float64{100, 200, 100}

	_, err := Redistribute(0, -50, snapshot, DefaultMinSize)
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 200, 100}, snapshot)
}

func TestRedistributeErrors(t *testing.T) {
	t.Run("empty snapshot", func(t *testing.T) {
		_, err := Redistribute(0, 10, nil, DefaultMinSize)
		assert.ErrorIs(t, err, ErrEmptySnapshot)
	})

	t.Run("index out of range", func(t *testing.T) {
		_, err := Redistribute(3, 10, []float64{100, 100}, DefaultMinSize)
		assert.ErrorIs(t, err, ErrInvalidIndex)

		_, err = Redistribute(-1, 10, []float64{100, 100}, DefaultMinSize)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	})

	t.Run("negative pan on last divider", func(t *testing.T) {
		_, err := Redistribute(1, -10, []float64{100, 100}, DefaultMinSize)
		assert.ErrorIs(t, err, ErrInvalidIndex)
	})

	t.Run("negative min size", func(t *testing.T) {
		_, err := Redistribute(0, 10, []float64{100, 100}, -1)
		assert.ErrorIs(t, err, ErrNegativeMinSize)
	})
}

func TestRedistributeProperties(t *testing.T) {
	snapshots := [][]float64{
		{100, 200, 100},
		{300, 90, 150, 400},
		{80, 80, 80},
		{500, 500},
		{120, 95, 240, 81, 1000},
	}
	pans := []float64{-400, -120, -33, -1, 0, 1, 17, 64, 250, 900}

	for _, snapshot := range snapshots {
		for index := range snapshot {
			for _, pan := range pans {
				if pan < 0 && index == len(snapshot)-1 {
					continue
				}

				got, err := Redistribute(index, pan, snapshot, DefaultMinSize)
				require.NoError(t, err)
				require.Len(t, got.NextSizes, len(snapshot))

				// size is only ever moved between siblings
				assert.InDelta(t, Sum(snapshot), Sum(got.NextSizes), 1e-9)

				growing := index
				if pan < 0 {
					growing = index + 1
				}
				for i, size := range got.NextSizes {
					if i == growing {
						continue
					}
					assert.GreaterOrEqual(t, size, float64(DefaultMinSize), "sibling %d of %v pan %v", i, snapshot, pan)
				}

				if pan == 0 {
					assert.Equal(t, snapshot, got.NextSizes)
					assert.Zero(t, got.Remainder)
				}
			}
		}
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.0, Sum(nil))
	assert.Equal(t, 400.0, Sum([]float64{100, 200, 100}))
}
