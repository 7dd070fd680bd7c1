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

package emulation

// FeatureReq is used to request the setting of an emulation attribute
// eg. a pause request from the display backend.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified or
// else the request will fail with an UnsupportedEmulationFeature error.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending on other conditions in the emulation.
const (
	// pause or resume the emulation.
	ReqSetPause FeatureReq = "ReqSetPause" // bool

	// change the video mode. results in reinitialisation of the display and
	// the sound.
	ReqSetVideo FeatureReq = "ReqSetVideo" // emulation.Video

	// end the emulation.
	ReqQuit FeatureReq = "ReqQuit" // nil
)

// Sentinal error returned if emulation does no support requested feature.
const (
	UnsupportedEmulationFeature = "unsupported emulation feature: %v"
)

// FeatureSetter is implemented by types that can accept feature requests.
type FeatureSetter interface {
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}
