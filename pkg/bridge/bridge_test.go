package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoteWorksWithAnyDevice(t *testing.T) {
	devices := []struct {
		name   string
		device Device
	}{
		{name: "tv", device: NewTV()},
		{name: "radio", device: NewRadio()},
	}

	for _, tt := range devices {
		t.Run(tt.name, func(t *testing.T) {
			remote := NewRemote(tt.device)

			assert.False(t, tt.device.IsEnabled(), "devices start disabled")
			remote.TogglePower()
			assert.True(t, tt.device.IsEnabled())
			remote.TogglePower()
			assert.False(t, tt.device.IsEnabled())

			assert.Equal(t, float64(50), tt.device.Volume(), "default volume is 50")
			remote.VolumeUp()
			assert.Equal(t, float64(51), tt.device.Volume())
			remote.VolumeDown()
			remote.VolumeDown()
			assert.Equal(t, float64(49), tt.device.Volume())
		})
	}
}

func TestVolumeClamping(t *testing.T) {
	tv := NewTV()
	tv.SetVolume(250)
	assert.Equal(t, float64(MaxVolume), tv.Volume(), "volume should clamp to the maximum")

	tv.SetVolume(-10)
	assert.Equal(t, float64(MinVolume), tv.Volume(), "volume should clamp to the minimum")
}

func TestChannelStepping(t *testing.T) {
	radio := NewRadio()
	remote := NewRemote(radio)

	assert.Equal(t, "CBC", radio.Channel(), "devices start on the first channel")
	remote.ChannelUp()
	assert.Equal(t, "NBC", radio.Channel())
	remote.ChannelUp()
	assert.Equal(t, "CBC", radio.Channel(), "channel up should wrap around")
	remote.ChannelDown()
	assert.Equal(t, "NBC", radio.Channel(), "channel down should wrap around")
}

func TestAdvancedRemoteMute(t *testing.T) {
	tv := NewTV()
	remote := NewAdvancedRemote(tv)

	remote.VolumeUp()
	remote.Mute()
	assert.Equal(t, float64(MinVolume), tv.Volume(), "mute should silence the device")
}
