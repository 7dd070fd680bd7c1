// This file is part of mdoutput.
//
// mdoutput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mdoutput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mdoutput.  If not, see <https://www.gnu.org/licenses/>.

package filters

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/mdoutput/curated"
	"github.com/jetsetilly/mdoutput/framebuffer"
	"github.com/jetsetilly/mdoutput/logger"
)

// MaxStack is the maximum number of filters in a Stack.
const MaxStack = 64

// Locker is implemented by display surfaces that must be locked before the
// pixel data is accessed.
type Locker interface {
	Lock() error
	Unlock()
}

// Config values used by the resizing filters.
type Config struct {
	// scale factors for the scale filter. the factors are reduced if the
	// output is not large enough
	XScale int
	YScale int

	// the stretch filter should keep the aspect ratio of the input
	Aspect bool
}

// Stack is an ordered list of filters and the buffers required to run them.
type Stack struct {
	alloc  Allocator
	locker Locker

	frame   Region
	display Region
	format  framebuffer.Format
	config  Config

	filters []*Filter

	// index of the automatically added filter. -1 if there isn't one
	def int

	// descriptors for every stage. there is always one more descriptor than
	// there are filters
	stages []Descriptor

	scratch [2][]byte
}

// NewStack is the preferred method of initialisation for the Stack type. If
// alloc is nil then scratch buffers are allocated from the heap.
//
// The Stack will contain only the default filter until filters are added.
func NewStack(alloc Allocator) *Stack {
	if alloc == nil {
		alloc = HeapAllocator{}
	}
	s := &Stack{
		alloc:   alloc,
		filters: make([]*Filter, 0, MaxStack),
		def:     -1,
	}
	s.rebuild()
	return s
}

// SetLocker sets the Locker used when writing to the display.
func (s *Stack) SetLocker(l Locker) {
	s.locker = l
}

// SetIO changes the regions used for the input and output of the Stack.
func (s *Stack) SetIO(frame Region, display Region, format framebuffer.Format) {
	s.frame = frame
	s.display = display
	s.format = format
	s.rebuild()
}

// SetConfig changes the configuration of the resizing filters.
func (s *Stack) SetConfig(config Config) {
	s.config = config
	s.rebuild()
}

// Config returns the current configuration.
func (s *Stack) Config() Config {
	return s.config
}

// Len returns the number of filters in the Stack, including any default
// filter.
func (s *Stack) Len() int {
	return len(s.filters)
}

// Filters returns a copy of the filters in the Stack.
func (s *Stack) Filters() []*Filter {
	f := make([]*Filter, len(s.filters))
	copy(f, s.filters)
	return f
}

// IsDefault returns true if the only filter in the Stack was added
// automatically.
func (s *Stack) IsDefault() bool {
	return s.def >= 0
}

// Push adds a filter to the end of the Stack. The end of the Stack is the last
// filter to be applied. Nothing happens if the filter is nil or if the Stack
// is full.
func (s *Stack) Push(f *Filter) {
	if f == nil || len(s.filters) >= MaxStack {
		return
	}
	s.filters = append(s.filters, f)
	s.rebuild()
}

// PushOnce adds a filter to the end of the Stack if it is not already in the
// Stack. The default filter does not count.
func (s *Stack) PushOnce(f *Filter) {
	if f == nil {
		return
	}
	for i, g := range s.filters {
		if g == f && i != s.def {
			return
		}
	}
	s.Push(f)
}

// Insert adds a filter to the start of the Stack. Nothing happens if the
// filter is nil or if the Stack is full.
func (s *Stack) Insert(f *Filter) {
	if f == nil || len(s.filters) >= MaxStack {
		return
	}
	s.filters = append(s.filters, nil)
	copy(s.filters[1:], s.filters)
	s.filters[0] = f
	if s.def >= 0 {
		s.def++
	}
	s.rebuild()
}

// Remove the filter at index. Nothing happens if the index is out of range.
func (s *Stack) Remove(index int) {
	if index < 0 || index >= len(s.filters) {
		return
	}
	s.remove(index)
	s.rebuild()
}

// Pluck removes all occurrences of the filter from the Stack.
func (s *Stack) Pluck(f *Filter) {
	if f == nil {
		return
	}
	for i := 0; i < len(s.filters); {
		if s.filters[i] == f {
			s.remove(i)
			continue
		}
		i++
	}
	s.rebuild()
}

// Set replaces the contents of the Stack. Filters beyond the capacity of the
// Stack and nil filters are ignored.
func (s *Stack) Set(filters []*Filter) {
	s.filters = s.filters[:0]
	s.def = -1
	for _, f := range filters {
		if f != nil && len(s.filters) < MaxStack {
			s.filters = append(s.filters, f)
		}
	}
	s.rebuild()
}

// PushByName adds the named filter to the end of the Stack.
func (s *Stack) PushByName(name string) error {
	f, err := find(name)
	if err != nil {
		return err
	}
	s.Push(f)
	return nil
}

// InsertByName adds the named filter to the start of the Stack.
func (s *Stack) InsertByName(name string) error {
	f, err := find(name)
	if err != nil {
		return err
	}
	s.Insert(f)
	return nil
}

// PluckByName removes all occurrences of the named filter.
func (s *Stack) PluckByName(name string) error {
	f, err := find(name)
	if err != nil {
		return err
	}
	s.Pluck(f)
	return nil
}

// Destroy releases all buffers and filter data. The Stack should not be used
// after being destroyed.
func (s *Stack) Destroy() {
	s.filters = s.filters[:0]
	s.def = -1
	s.stages = nil
	s.release(0)
	s.release(1)
}

// release scratch buffer back to the allocator
func (s *Stack) release(i int) {
	if s.scratch[i] != nil {
		s.alloc.Free(s.scratch[i])
		s.scratch[i] = nil
	}
}

// remove filter at index without rebuilding
func (s *Stack) remove(index int) {
	s.filters = append(s.filters[:index], s.filters[index+1:]...)
	switch {
	case index == s.def:
		s.def = -1
	case index < s.def:
		s.def--
	}
}

// rebuild the stack after a structural change
func (s *Stack) rebuild() {
	for {
		// add the default filter if the stack is empty
		if len(s.filters) == 0 {
			s.filters = append(s.filters, Off)
			s.def = 0
			continue
		}

		// remove the default filter if there are other filters
		if len(s.filters) > 1 && s.def >= 0 {
			s.remove(s.def)
			continue
		}

		// count the number of filters that require a scratch buffer. the last
		// filter always outputs to the display
		buffers := 0
		for i, f := range s.filters {
			if !f.Safe && i != len(s.filters)-1 {
				buffers++
			}
		}
		buffers = min(buffers, len(s.scratch))

		for i := buffers; i < len(s.scratch); i++ {
			s.release(i)
		}

		if s.allocScratch(buffers) {
			break
		}
	}

	s.assign()
	s.clearDisplay()
}

// allocScratch makes sure the required number of scratch buffers are
// allocated. returns false if an allocation failed, in which case the stack
// has been reduced and the rebuild should be tried again
func (s *Stack) allocScratch(buffers int) bool {
	size := s.display.Pitch * s.display.Height

	for i := range buffers {
		if len(s.scratch[i]) == size && size > 0 {
			continue
		}

		s.release(i)
		if size == 0 {
			continue
		}

		b, err := s.alloc.Alloc(size)
		if err != nil {
			for j, f := range s.filters {
				if !f.Safe {
					logger.Logf(logger.Allow, "filters", "cannot allocate scratch buffer (%v): removing %s", err, f.Name)
					s.remove(j)
					break
				}
			}
			return false
		}

		s.scratch[i] = b
	}

	return true
}

// assign descriptors to every stage
func (s *Stack) assign() {
	s.stages = s.stages[:0]
	s.stages = append(s.stages, Descriptor{
		Region: s.frame,
		Source: SourceFrame,
	})

	rot := 0
	for i, f := range s.filters {
		var d Descriptor

		switch {
		case i == len(s.filters)-1:
			d = Descriptor{
				Region: s.display,
				Source: SourceDisplay,
			}
		case f.Safe:
			d = s.stages[i]
		default:
			d = Descriptor{
				Region: Region{
					Buf:    s.scratch[rot],
					Width:  s.display.Width,
					Height: s.display.Height,
					Pitch:  s.display.Pitch,
				},
				Source: SourceScratch0 + Source(rot),
			}
			rot ^= 1
		}

		d.reset()
		s.stages = append(s.stages, d)
	}
}

// clear the display so that nothing from a previous configuration remains
func (s *Stack) clearDisplay() {
	n := min(s.display.Pitch*s.display.Height, len(s.display.Buf))
	if n == 0 {
		return
	}
	if s.locker != nil {
		if err := s.locker.Lock(); err != nil {
			return
		}
		defer s.locker.Unlock()
	}
	clear(s.display.Buf[:n])
}

// Process runs every filter in the Stack. The display is locked only for the
// last filter.
func (s *Stack) Process() error {
	n := len(s.filters)
	if n == 0 {
		return nil
	}

	for i := range n - 1 {
		s.apply(i)
	}

	if s.locker != nil {
		if err := s.locker.Lock(); err != nil {
			return err
		}
		defer s.locker.Unlock()
	}

	s.apply(n - 1)

	return nil
}

func (s *Stack) apply(i int) {
	in := &s.stages[i]
	out := &s.stages[i+1]

	switch s.filters[i].Kind {
	case KindOff:
		s.off(in, out)
	case KindScale:
		s.scale(in, out)
	case KindStretch:
		s.stretch(in, out)
	}
}

// Stage describes one stage of the Stack.
type Stage struct {
	Filter *Filter
	Input  Descriptor
	Output Descriptor
}

// Stages returns a description of every stage in the Stack.
func (s *Stack) Stages() []Stage {
	st := make([]Stage, len(s.filters))
	for i, f := range s.filters {
		st[i] = Stage{
			Filter: f,
			Input:  s.stages[i],
			Output: s.stages[i+1],
		}
	}
	return st
}

// Scratch returns the number of scratch buffers currently allocated.
func (s *Stack) Scratch() int {
	n := 0
	for _, b := range s.scratch {
		if b != nil {
			n++
		}
	}
	return n
}

func (s *Stack) String() string {
	b := strings.Builder{}
	for i, st := range s.Stages() {
		b.WriteString(fmt.Sprintf("%d: %s (input: %s output: %s)", i, st.Filter.Name, st.Input.Source, st.Output.Source))
		if i == s.def {
			b.WriteString(" [default]")
		}
		if st.Output.failed {
			b.WriteString(" [failed]")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func find(name string) (*Filter, error) {
	f := Find(name)
	if f == nil {
		return nil, curated.Errorf(UnknownFilter, name)
	}
	return f, nil
}
