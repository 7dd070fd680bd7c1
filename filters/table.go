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
	"strings"

	"github.com/jetsetilly/mdoutput/curated"
)

// Sentinal error patterns
const (
	UnknownFilter = "filters: unknown filter: %s"
)

// Kind identifies the transform performed by a filter.
type Kind int

// List of valid Kind values.
const (
	KindOff Kind = iota
	KindScale
	KindStretch
)

func (k Kind) String() string {
	switch k {
	case KindOff:
		return "off"
	case KindScale:
		return "scale"
	case KindStretch:
		return "stretch"
	}
	return "unknown"
}

// Filter describes an available filter. Filters are compared by pointer so
// only the instances in the Available list should be used.
type Filter struct {
	Name string
	Kind Kind

	// output buffer can be the same as the input buffer
	Safe bool

	// filter changes the size of the input
	Resize bool
}

func (f *Filter) String() string {
	return f.Name
}

// The available filters.
var (
	Off = &Filter{
		Name:   "off",
		Kind:   KindOff,
		Safe:   true,
		Resize: false,
	}

	Scale = &Filter{
		Name:   "scale",
		Kind:   KindScale,
		Safe:   false,
		Resize: true,
	}

	Stretch = &Filter{
		Name:   "stretch",
		Kind:   KindStretch,
		Safe:   false,
		Resize: true,
	}
)

// Available is the list of all filters in the order they should be presented
// to the user.
var Available = []*Filter{Off, Scale, Stretch}

// Find returns the filter with the name, ignoring case. Returns nil if there
// is no filter with that name.
func Find(name string) *Filter {
	name = strings.TrimSpace(name)
	for _, f := range Available {
		if strings.EqualFold(f.Name, name) {
			return f
		}
	}
	return nil
}

// ParseList returns the filters named in a comma separated list. An empty list
// returns an empty slice. Returns an error if any name can not be found.
func ParseList(list string) ([]*Filter, error) {
	l := make([]*Filter, 0)
	if strings.TrimSpace(list) == "" {
		return l, nil
	}
	for _, n := range strings.Split(list, ",") {
		f := Find(n)
		if f == nil {
			return nil, curated.Errorf(UnknownFilter, strings.TrimSpace(n))
		}
		l = append(l, f)
	}
	return l, nil
}

// Names returns the names of all available filters.
func Names() []string {
	n := make([]string, len(Available))
	for i, f := range Available {
		n[i] = f.Name
	}
	return n
}
