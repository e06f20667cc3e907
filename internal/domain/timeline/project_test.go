package timeline

import (
	"errors"
	"testing"

	"github.com/PavaniTiago/sleep-coach-api/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shiftBlocks(blocks []Block) []Block {
	out := []Block{}
	for _, b := range blocks {
		if b.Type == BlockShift {
			out = append(out, b)
		}
	}
	return out
}

func TestProjectDay_DayShift(t *testing.T) {
	shifts := []ShiftInterval{{Date: "2024-05-10", StartTime: "09:00", EndTime: "17:00"}}

	blocks, err := ProjectDay("2024-05-10", shifts, nil)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, Block{Type: BlockShift, Date: "2024-05-10", Row: 5, StartHour: 9, EndHour: 17}, blocks[0])

	next, err := ProjectDay("2024-05-11", shifts, nil)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestProjectDay_OvernightShiftSplits(t *testing.T) {
	shifts := []ShiftInterval{{Date: "2024-05-10", StartTime: "22:00", EndTime: "06:00"}}

	first, err := ProjectDay("2024-05-10", shifts, nil)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, Block{Type: BlockShift, Date: "2024-05-10", Row: 5, StartHour: 22, EndHour: 24, ContinuesToNextDay: true}, first[0])

	second, err := ProjectDay("2024-05-11", shifts, nil)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, Block{Type: BlockShift, Date: "2024-05-11", Row: 5, StartHour: 0, EndHour: 6, ContinuesFromPreviousDay: true}, second[0])
}

func TestProjectDay_HalfHourRounding(t *testing.T) {
	shifts := []ShiftInterval{{Date: "2024-05-10", StartTime: "08:29", EndTime: "16:45"}}

	blocks, err := ProjectDay("2024-05-10", shifts, nil)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 8.0, blocks[0].StartHour)
	assert.Equal(t, 16.5, blocks[0].EndHour)
}

func TestProjectDay_EndAtMidnightDoesNotSpill(t *testing.T) {
	shifts := []ShiftInterval{{Date: "2024-05-10", StartTime: "16:00", EndTime: "00:00"}}

	blocks, err := ProjectDay("2024-05-10", shifts, nil)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, 24.0, blocks[0].EndHour)
	assert.False(t, blocks[0].ContinuesToNextDay)

	next, err := ProjectDay("2024-05-11", shifts, nil)
	require.NoError(t, err)
	assert.Empty(t, next)
}

func TestProjectDay_OverlappingShiftsAreNotMerged(t *testing.T) {
	shifts := []ShiftInterval{
		{Date: "2024-05-10", StartTime: "06:00", EndTime: "10:00"},
		{Date: "2024-05-10", StartTime: "14:00", EndTime: "18:00"},
		{Date: "2024-05-10", StartTime: "15:00", EndTime: "19:00"},
	}

	blocks, err := ProjectDay("2024-05-10", shifts, DefaultBands())
	require.NoError(t, err)

	got := shiftBlocks(blocks)
	require.Len(t, got, 3)
	assert.Equal(t, 6.0, got[0].StartHour)
	assert.Equal(t, 14.0, got[1].StartHour)
	assert.Equal(t, 15.0, got[2].StartHour)
	for _, b := range got {
		assert.Equal(t, 5, b.Row)
	}
}

func TestProjectDay_DefaultBands(t *testing.T) {
	blocks, err := ProjectDay("2024-05-10", nil, DefaultBands())
	require.NoError(t, err)

	// seis faixas do dia + a continuação do sono da noite anterior
	require.Len(t, blocks, 7)

	melatonin := blocks[0]
	assert.Equal(t, BlockMelatonin, melatonin.Type)
	assert.True(t, melatonin.IsCircle)
	assert.Equal(t, 1, melatonin.Row)
	assert.Equal(t, 20.0, melatonin.StartHour)
	assert.Equal(t, 20.0, melatonin.EndHour)

	sleep := blocks[1]
	assert.Equal(t, BlockSleep, sleep.Type)
	assert.Equal(t, 22.0, sleep.StartHour)
	assert.Equal(t, 24.0, sleep.EndHour)
	assert.True(t, sleep.ContinuesToNextDay)

	carried := blocks[6]
	assert.Equal(t, BlockSleep, carried.Type)
	assert.Equal(t, "2024-05-10", carried.Date)
	assert.Equal(t, 0.0, carried.StartHour)
	assert.Equal(t, 6.0, carried.EndHour)
	assert.True(t, carried.ContinuesFromPreviousDay)

	for _, b := range blocks {
		assert.GreaterOrEqual(t, b.StartHour, 0.0)
		assert.LessOrEqual(t, b.EndHour, 24.0)
	}
}

func TestProjectDay_MalformedTime(t *testing.T) {
	shifts := []ShiftInterval{{Date: "2024-05-09", StartTime: "22:00", EndTime: "6am"}}

	_, err := ProjectDay("2024-05-10", shifts, nil)
	require.Error(t, err)

	var malformed *utils.MalformedTimeError
	assert.True(t, errors.As(err, &malformed))
	assert.Equal(t, "6am", malformed.Value)
	assert.Contains(t, err.Error(), "2024-05-09")
}

func TestProjectDay_MalformedDate(t *testing.T) {
	_, err := ProjectDay("10/05/2024", nil, DefaultBands())
	assert.Error(t, err)
}

func TestProjectRange_CrossesMonthBoundary(t *testing.T) {
	shifts := []ShiftInterval{
		{Date: "2024-01-31", StartTime: "19:00", EndTime: "07:30"},
		{Date: "2024-01-29", StartTime: "09:00", EndTime: "17:00"},
	}

	days, err := ProjectRange("2024-01-30", 3, shifts, nil)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-01-30", days[0].Date)
	assert.Empty(t, days[0].Blocks)

	require.Len(t, days[1].Blocks, 1)
	assert.Equal(t, 19.0, days[1].Blocks[0].StartHour)
	assert.Equal(t, 24.0, days[1].Blocks[0].EndHour)

	require.Len(t, days[2].Blocks, 1)
	assert.Equal(t, "2024-02-01", days[2].Date)
	assert.Equal(t, 7.5, days[2].Blocks[0].EndHour)
}

func TestProjectRangeWithLayout(t *testing.T) {
	layout := DefaultLayout()
	layout[BlockShift] = 1
	layout[BlockMelatonin] = 5

	shifts := []ShiftInterval{{Date: "2024-05-10", StartTime: "09:00", EndTime: "17:00"}}
	days, err := ProjectRangeWithLayout("2024-05-10", 1, shifts, DefaultBands(), layout)
	require.NoError(t, err)

	for _, b := range days[0].Blocks {
		switch b.Type {
		case BlockShift:
			assert.Equal(t, 1, b.Row)
		case BlockMelatonin:
			assert.Equal(t, 5, b.Row)
		case BlockSleep:
			assert.Equal(t, 2, b.Row)
		}
	}
}

func TestBandsFor_DefaultScheduleMatchesDefaultBands(t *testing.T) {
	bands, err := BandsFor(Schedule{SleepStart: "22:00", WakeTime: "06:00", UseMelatonin: true})
	require.NoError(t, err)
	assert.Equal(t, DefaultBands(), bands)
}

func TestBandsFor_LateSleeperWithoutMelatonin(t *testing.T) {
	bands, err := BandsFor(Schedule{SleepStart: "01:00", WakeTime: "09:00"})
	require.NoError(t, err)

	byType := map[BlockType]Band{}
	for _, b := range bands {
		byType[b.Type] = b
	}
	_, hasMelatonin := byType[BlockMelatonin]
	assert.False(t, hasMelatonin)

	assert.Equal(t, Band{Type: BlockSleep, Row: 2, StartHour: 1, EndHour: 9}, byType[BlockSleep])
	assert.Equal(t, Band{Type: BlockNoLight, Row: 3, StartHour: 23, EndHour: 25}, byType[BlockNoLight])
	assert.Equal(t, Band{Type: BlockCaffeine, Row: 4, StartHour: 10, EndHour: 17}, byType[BlockCaffeine])
	assert.Equal(t, Band{Type: BlockNoCaffeine, Row: 4, StartHour: 19, EndHour: 27}, byType[BlockNoCaffeine])
}

func TestBandsFor_MalformedSchedule(t *testing.T) {
	_, err := BandsFor(Schedule{SleepStart: "late", WakeTime: "06:00"})
	assert.ErrorIs(t, err, utils.ErrMalformedTime)
}
