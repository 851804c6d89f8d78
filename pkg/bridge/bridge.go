// Package bridge implements the bridge pattern: remote controls (the
// abstraction) operate any device (the implementation) through a small
// interface, so remotes and devices vary independently.
package bridge

// Volume bounds shared by all devices.
const (
	MinVolume = 0
	MaxVolume = 100
)

// channels is the broadcast lineup, in channel-up order.
var channels = []string{"CBC", "NBC"}

// Device is the implementation side of the bridge.
type Device interface {
	Enable()
	Disable()
	IsEnabled() bool
	Volume() float64
	SetVolume(percent float64)
	Channel() string
	SetChannel(channel string)
}

// device carries the state common to all devices.
type device struct {
	enabled bool
	volume  float64
	channel string
}

func newDevice() device {
	return device{volume: 50, channel: channels[0]}
}

func (d *device) Enable()         { d.enabled = true }
func (d *device) Disable()        { d.enabled = false }
func (d *device) IsEnabled() bool { return d.enabled }
func (d *device) Volume() float64 { return d.volume }

// SetVolume clamps to the device's volume range.
func (d *device) SetVolume(percent float64) {
	if percent > MaxVolume {
		percent = MaxVolume
	}
	if percent < MinVolume {
		percent = MinVolume
	}
	d.volume = percent
}

func (d *device) Channel() string { return d.channel }

func (d *device) SetChannel(channel string) { d.channel = channel }

// TV is a concrete device.
type TV struct {
	device
}

// NewTV creates a television at default volume on the first channel.
func NewTV() *TV {
	return &TV{device: newDevice()}
}

// Radio is a concrete device.
type Radio struct {
	device
}

// NewRadio creates a radio at default volume on the first channel.
func NewRadio() *Radio {
	return &Radio{device: newDevice()}
}

// Remote is the abstraction side of the bridge.
type Remote struct {
	device Device
}

// NewRemote pairs a remote with a device.
func NewRemote(d Device) *Remote {
	return &Remote{device: d}
}

// TogglePower flips the device on or off.
func (r *Remote) TogglePower() {
	if r.device.IsEnabled() {
		r.device.Disable()
		return
	}
	r.device.Enable()
}

// VolumeUp raises the volume one step.
func (r *Remote) VolumeUp() {
	r.device.SetVolume(r.device.Volume() + 1)
}

// VolumeDown lowers the volume one step.
func (r *Remote) VolumeDown() {
	r.device.SetVolume(r.device.Volume() - 1)
}

// ChannelUp steps to the next channel in the lineup, wrapping around.
func (r *Remote) ChannelUp() {
	r.device.SetChannel(channels[(r.channelIndex()+1)%len(channels)])
}

// ChannelDown steps to the previous channel in the lineup, wrapping around.
func (r *Remote) ChannelDown() {
	r.device.SetChannel(channels[(r.channelIndex()+len(channels)-1)%len(channels)])
}

func (r *Remote) channelIndex() int {
	current := r.device.Channel()
	for i, ch := range channels {
		if ch == current {
			return i
		}
	}
	return 0
}

// AdvancedRemote extends the abstraction without touching any device.
type AdvancedRemote struct {
	Remote
}

// NewAdvancedRemote pairs an advanced remote with a device.
func NewAdvancedRemote(d Device) *AdvancedRemote {
	return &AdvancedRemote{Remote: Remote{device: d}}
}

// Mute drops the volume to the minimum.
func (r *AdvancedRemote) Mute() {
	r.device.SetVolume(MinVolume)
}
