package canbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/auto-arcade/internal/config"
)

func TestNewCarState(t *testing.T) {
	c := NewCarState()
	assert.Equal(t, Off, c.Headlights)
	assert.Equal(t, Open, c.DriverWindow)
	assert.Equal(t, Closed, c.PassengerWindow)
	assert.Equal(t, Unlocked, c.Doors)
	assert.Equal(t, 0, c.EngineRPM)
}

func TestCarStateApply(t *testing.T) {
	tests := []struct {
		name  string
		sub   Subsystem
		value int
		check func(t *testing.T, c CarState)
	}{
		{"headlights on", SubsystemHeadlights, 1, func(t *testing.T, c CarState) { assert.Equal(t, On, c.Headlights) }},
		{"doors lock", SubsystemDoors, 1, func(t *testing.T, c CarState) { assert.Equal(t, Locked, c.Doors) }},
		{"driver close", SubsystemWindows, 0, func(t *testing.T, c CarState) { assert.Equal(t, Closed, c.DriverWindow) }},
		{"driver open", SubsystemWindows, 1, func(t *testing.T, c CarState) { assert.Equal(t, Open, c.DriverWindow) }},
		{"passenger close", SubsystemWindows, 2, func(t *testing.T, c CarState) { assert.Equal(t, Closed, c.PassengerWindow) }},
		{"passenger open", SubsystemWindows, 3, func(t *testing.T, c CarState) { assert.Equal(t, Open, c.PassengerWindow) }},
		{"engine scaled", SubsystemEngine, 3, func(t *testing.T, c CarState) { assert.Equal(t, 3000, c.EngineRPM) }},
		{"engine capped", SubsystemEngine, 9, func(t *testing.T, c CarState) { assert.Equal(t, MaxRPM, c.EngineRPM) }},
		{"engine huge", SubsystemEngine, 1 << 30, func(t *testing.T, c CarState) { assert.Equal(t, MaxRPM, c.EngineRPM) }},
		{"engine negative", SubsystemEngine, -4, func(t *testing.T, c CarState) { assert.Equal(t, 0, c.EngineRPM) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCarState()
			require.NoError(t, c.Apply(tc.sub, tc.value))
			tc.check(t, c)
		})
	}
}

func TestCarStateApplyInvalid(t *testing.T) {
	tests := []struct {
		sub   Subsystem
		value int
	}{
		{SubsystemHeadlights, 2},
		{SubsystemHeadlights, -1},
		{SubsystemDoors, 5},
		{SubsystemWindows, 4},
		{Subsystem("wipers"), 1},
	}

	for _, tc := range tests {
		c := NewCarState()
		err := c.Apply(tc.sub, tc.value)
		assert.ErrorIs(t, err, ErrInvalidValue, "%s=%d", tc.sub, tc.value)
		assert.Equal(t, NewCarState(), c, "rejected value must not change the car")
	}
}

func TestMissionHeadlights(t *testing.T) {
	missions, err := NewMissions([]config.MissionConfig{
		{Description: "Lights", Target: map[string]string{"headlights": "ON"}},
	})
	require.NoError(t, err)
	m := missions[0]

	c := NewCarState()
	assert.False(t, m.Satisfied(c))

	require.NoError(t, c.Apply(SubsystemHeadlights, 1))
	assert.True(t, m.Satisfied(c))

	require.NoError(t, c.Apply(SubsystemHeadlights, 0))
	assert.False(t, m.Satisfied(c), "satisfied only while the lights are on")
}

func TestMissionMultipleFields(t *testing.T) {
	missions, err := NewMissions([]config.MissionConfig{
		{Description: "Park", Target: map[string]string{"doors": "locked", "engine_rpm": "0"}},
	})
	require.NoError(t, err)

	c := NewCarState()
	assert.False(t, missions[0].Satisfied(c))
	require.NoError(t, c.Apply(SubsystemDoors, 1))
	assert.True(t, missions[0].Satisfied(c))
	require.NoError(t, c.Apply(SubsystemEngine, 2))
	assert.False(t, missions[0].Satisfied(c))
}

func TestNewMissionsRejectsBadTargets(t *testing.T) {
	bad := []map[string]string{
		{"wipers": "on"},
		{"headlights": "dim"},
		{"engine_rpm": "fast"},
		{"engine_rpm": "9000"},
	}
	for _, target := range bad {
		_, err := NewMissions([]config.MissionConfig{{Description: "x", Target: target}})
		assert.Error(t, err, "%v", target)
	}

	_, err := NewMissions(nil)
	assert.Error(t, err)
}

func TestNewBusMap(t *testing.T) {
	bus, err := NewBusMap(config.DefaultCanBusConfig().BusIDs)
	require.NoError(t, err)
	assert.Equal(t, []int{0x101, 0x201, 0x301, 0x401}, bus.IDs())

	sub, err := bus.Lookup(0x201)
	require.NoError(t, err)
	assert.Equal(t, SubsystemHeadlights, sub)

	_, err = bus.Lookup(0x999)
	assert.ErrorIs(t, err, ErrUnknownID)

	_, err = NewBusMap(map[string]string{"0x501": "wipers"})
	assert.Error(t, err)
	_, err = NewBusMap(map[string]string{"zz": "doors"})
	assert.Error(t, err)
}

func TestBusLogKeepsNewest(t *testing.T) {
	log := NewBusLog(15)
	for i := range 20 {
		log.Add(Entry{Frame: Frame{ID: i}})
	}

	require.Equal(t, 15, log.Len())
	assert.Equal(t, 5, log.Entries()[0].Frame.ID)
	assert.Equal(t, 19, log.Entries()[14].Frame.ID)

	log.Clear()
	assert.Equal(t, 0, log.Len())
}

func TestEntryText(t *testing.T) {
	frame := Entry{Frame: Frame{ID: 0x201, Data: 1}, Tick: 150}
	assert.Equal(t, "ID: 0x201 Data: 01 [+00:02]", frame.Text(60))

	sys := Entry{System: "System initialized", Tick: 60 * 75}
	assert.Equal(t, "SYS: System initialized [+01:15]", sys.Text(60))
}
