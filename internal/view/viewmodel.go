package view

import (
	"fmt"

	"github.com/nerrad567/homedeck/internal/actionlog"
	"github.com/nerrad567/homedeck/internal/device"
)

// Title heads every screen, as the original dashboard did.
const Title = "Smart Home Controller"

// PlaceholderNoActions is shown on the detail screen when a device has
// no logged actions yet.
const PlaceholderNoActions = "No actions yet."

// chartNote marks the statistics chart as a placeholder; historical
// charting is out of scope.
const chartNote = "Power chart placeholder: live figure only."

// DeviceCard is the overview representation of one device.
type DeviceCard struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Kind       device.Kind `json:"kind"`
	StateLabel string      `json:"state_label"`
	Hint       string      `json:"hint"`

	// On is set for switched devices, Level (with its bounds) for
	// levelled ones.
	On       *bool    `json:"on,omitempty"`
	Level    *float64 `json:"level,omitempty"`
	LevelMin *float64 `json:"level_min,omitempty"`
	LevelMax *float64 `json:"level_max,omitempty"`
}

// OverviewView is the render state of the overview screen: switched
// device cards first, then the slider-controlled ones.
type OverviewView struct {
	Title    string       `json:"title"`
	Switched []DeviceCard `json:"switched"`
	Levelled []DeviceCard `json:"levelled"`
}

// LogRow is one action log line as the statistics table shows it.
type LogRow struct {
	Time     string `json:"time"`
	DeviceID string `json:"device_id"`
	Action   string `json:"action"`
	User     string `json:"user"`
}

// StatisticsView is the render state of the statistics screen.
type StatisticsView struct {
	Title      string   `json:"title"`
	PowerWatts int      `json:"power_watts"`
	PowerText  string   `json:"power_text"`
	ChartNote  string   `json:"chart_note"`
	Log        []LogRow `json:"log"`
}

// DeviceDetailView is the render state of the device detail screen.
type DeviceDetailView struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Kind       device.Kind `json:"kind"`
	StateLabel string      `json:"state_label"`
	Recent     []LogRow    `json:"recent"`

	// Placeholder is set when Recent is empty.
	Placeholder string `json:"placeholder,omitempty"`
}

// cardHints are the per-kind helper lines the original cards carried.
var cardHints = map[device.Kind]string{
	device.KindLight:      "Tap to switch the light.",
	device.KindDoor:       "Tap to lock / unlock the door.",
	device.KindThermostat: "Use slider to change temperature.",
	device.KindFan:        "0 = OFF, 3 = MAX.",
}

// BuildOverview renders the overview view-model from a device snapshot.
// It is a pure function of its inputs.
func BuildOverview(devices []device.Device) OverviewView {
	v := OverviewView{Title: Title}

	for i := range devices {
		card := buildCard(&devices[i])
		if devices[i].Kind.Switched() {
			v.Switched = append(v.Switched, card)
		} else {
			v.Levelled = append(v.Levelled, card)
		}
	}

	return v
}

// buildCard renders one device card.
func buildCard(d *device.Device) DeviceCard {
	card := DeviceCard{
		ID:         d.ID,
		Name:       d.Name,
		Kind:       d.Kind,
		StateLabel: d.StateLabel(),
		Hint:       cardHints[d.Kind],
	}

	if d.Switch != nil {
		on := d.Switch.On
		card.On = &on
	}
	if d.Level != nil {
		level := d.Level.Value
		card.Level = &level
		if min, max, ok := device.LevelBounds(d.Kind); ok {
			card.LevelMin = &min
			card.LevelMax = &max
		}
	}

	return card
}

// BuildStatistics renders the statistics view-model: the current
// simulated power figure and the full action journal, newest first.
func BuildStatistics(watts int, entries []actionlog.Entry) StatisticsView {
	v := StatisticsView{
		Title:      Title,
		PowerWatts: watts,
		PowerText:  fmt.Sprintf("Current simulated power: %d W", watts),
		ChartNote:  chartNote,
		Log:        make([]LogRow, 0, len(entries)),
	}

	for _, e := range entries {
		v.Log = append(v.Log, logRow(e))
	}

	return v
}

// BuildDeviceDetail renders the detail view-model for one device and
// its recent actions (already filtered and ordered newest first).
func BuildDeviceDetail(d *device.Device, recent []actionlog.Entry) DeviceDetailView {
	v := DeviceDetailView{
		ID:         d.ID,
		Name:       d.Name,
		Kind:       d.Kind,
		StateLabel: d.StateLabel(),
		Recent:     make([]LogRow, 0, len(recent)),
	}

	for _, e := range recent {
		v.Recent = append(v.Recent, logRow(e))
	}
	if len(v.Recent) == 0 {
		v.Placeholder = PlaceholderNoActions
	}

	return v
}

// logRow converts a journal entry to its display row.
func logRow(e actionlog.Entry) LogRow {
	return LogRow{
		Time:     e.Time(),
		DeviceID: e.DeviceID,
		Action:   e.Action,
		User:     e.User,
	}
}
