package internal

import (
	"fmt"
	"time"

	"github.com/BrandonKowalski/braciole/pkg/braciole/constants"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

// PointerEvent is a normalized pointer sample in window logical coordinates.
// Produced by the evdev touch reader on devices where SDL reports no mouse.
type PointerEvent struct {
	X, Y int32
	Down bool // finger down this sample
	Up   bool // finger lifted this sample
}

type touchReader struct {
	device  *evdev.InputDevice
	events  chan PointerEvent
	running *atomic.Bool

	minX, maxX int32
	minY, maxY int32
}

var activeTouchReader *touchReader

// StartTouchReader opens the touchscreen input device and starts translating
// its absolute events into PointerEvents scaled to the window's logical size.
func StartTouchReader(devicePath string) error {
	device, err := evdev.Open(devicePath)
	if err != nil {
		return fmt.Errorf("open touch device %s: %w", devicePath, err)
	}

	reader := &touchReader{
		device:  device,
		events:  make(chan PointerEvent, 64),
		running: atomic.NewBool(true),
	}

	absInfos, err := device.AbsInfos()
	if err == nil {
		if info, ok := absInfos[evdev.ABS_X]; ok {
			reader.minX, reader.maxX = info.Minimum, info.Maximum
		}
		if info, ok := absInfos[evdev.ABS_Y]; ok {
			reader.minY, reader.maxY = info.Minimum, info.Maximum
		}
	}

	activeTouchReader = reader
	go reader.loop()

	name, _ := device.Name()
	GetInternalLogger().Debug("Touch reader started", "device", devicePath, "name", name)

	return nil
}

// TouchEvents returns the pointer event stream, or nil when no touch reader
// is active. Callers should drain it once per frame.
func TouchEvents() <-chan PointerEvent {
	if activeTouchReader == nil {
		return nil
	}
	return activeTouchReader.events
}

// contactDebounce suppresses the contact chatter cheap resistive panels
// produce on lift-off: a new press within constants.DefaultInputDelay of the
// previous release is treated as the same contact and ignored.
type contactDebounce struct {
	touching bool
	lastUp   time.Time
}

// press reports whether a BTN_TOUCH press at now should be emitted.
func (d *contactDebounce) press(now time.Time) bool {
	if d.touching || now.Sub(d.lastUp) < constants.DefaultInputDelay {
		return false
	}
	d.touching = true
	return true
}

// release reports whether a BTN_TOUCH release at now should be emitted.
func (d *contactDebounce) release(now time.Time) bool {
	if !d.touching {
		return false
	}
	d.touching = false
	d.lastUp = now
	return true
}

func (r *touchReader) loop() {
	var x, y int32
	var pending PointerEvent
	var contact contactDebounce

	for r.running.Load() {
		ev, err := r.device.ReadOne()
		if err != nil {
			return
		}

		switch ev.Type {
		case evdev.EV_ABS:
			switch ev.Code {
			case evdev.ABS_X, evdev.ABS_MT_POSITION_X:
				x = r.scaleX(ev.Value)
			case evdev.ABS_Y, evdev.ABS_MT_POSITION_Y:
				y = r.scaleY(ev.Value)
			}
		case evdev.EV_KEY:
			if ev.Code == evdev.BTN_TOUCH {
				if ev.Value == 1 {
					pending.Down = contact.press(time.Now()) || pending.Down
				} else if ev.Value == 0 {
					pending.Up = contact.release(time.Now()) || pending.Up
				}
			}
		case evdev.EV_SYN:
			pending.X, pending.Y = x, y
			select {
			case r.events <- pending:
			default:
				// Consumer fell behind; drop the sample
			}
			pending = PointerEvent{}
		}
	}
}

func (r *touchReader) scaleX(value int32) int32 {
	if r.maxX <= r.minX {
		return value
	}
	return (value - r.minX) * GetWindow().GetWidth() / (r.maxX - r.minX)
}

func (r *touchReader) scaleY(value int32) int32 {
	if r.maxY <= r.minY {
		return value
	}
	return (value - r.minY) * GetWindow().GetHeight() / (r.maxY - r.minY)
}

func stopTouchReader() {
	if activeTouchReader == nil {
		return
	}
	activeTouchReader.running.Store(false)
	activeTouchReader.device.Close()
	activeTouchReader = nil
}
