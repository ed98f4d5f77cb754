/*
 * Copyright 2024 CloudWeGo Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package giop

import (
	"github.com/corbalite/giopkg/protocol/cdr"
)

// TaggedComponent is one (tag, data) component of a profile.
type TaggedComponent struct {
	Tag           uint32
	ComponentData []byte
}

// MarshalTaggedComponent ...
func MarshalTaggedComponent(ch *cdr.Channel, v *TaggedComponent) error {
	if err := cdr.ULong(ch, &v.Tag); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.ComponentData)
}

// MultipleComponentProfile is the body of a TAG_MULTIPLE_COMPONENTS profile.
type MultipleComponentProfile []TaggedComponent

// MarshalMultipleComponentProfile ...
func MarshalMultipleComponentProfile(ch *cdr.Channel, v *MultipleComponentProfile) error {
	return cdr.Sequence(ch, (*[]TaggedComponent)(v), MarshalTaggedComponent)
}

// ProfileBody is the body of a TAG_INTERNET_IOP profile. The components
// field is absent on the wire for IIOP 1.0; it is kept in memory for every
// version so that callers need not switch on the version themselves.
type ProfileBody struct {
	IIOPVersion cdr.Version
	Host        string
	Port        uint16
	ObjectKey   []byte
	Components  []TaggedComponent
}

// MarshalProfileBody ...
func MarshalProfileBody(ch *cdr.Channel, v *ProfileBody) error {
	if err := cdr.VersionCodec(ch, &v.IIOPVersion); err != nil {
		return err
	}
	if err := cdr.String(ch, &v.Host); err != nil {
		return err
	}
	if err := cdr.UShort(ch, &v.Port); err != nil {
		return err
	}
	if err := cdr.OctetSeq(ch, &v.ObjectKey); err != nil {
		return err
	}
	// IIOP 1.0 lacks the components field.
	if v.IIOPVersion.GE(1, 1) {
		return cdr.Sequence(ch, &v.Components, MarshalTaggedComponent)
	}
	if ch.Mode() == cdr.Decode {
		v.Components = nil
	}
	return nil
}

// TaggedProfile is the tagged union of profile bodies inside an IOR. The
// known tags carry their body as a nested CDR encapsulation; any other tag
// carries opaque octets.
type TaggedProfile struct {
	Tag        uint32
	IIOP       *ProfileBody             // TAG_INTERNET_IOP
	Components MultipleComponentProfile // TAG_MULTIPLE_COMPONENTS
	Raw        []byte                   // any other tag
}

// MarshalTaggedProfile ...
func MarshalTaggedProfile(ch *cdr.Channel, v *TaggedProfile) error {
	if err := cdr.ULong(ch, &v.Tag); err != nil {
		return err
	}
	switch v.Tag {
	case TAG_INTERNET_IOP:
		var enc []byte
		if ch.Mode() == cdr.Decode {
			if err := cdr.OctetSeq(ch, &enc); err != nil {
				return err
			}
			v.IIOP = new(ProfileBody)
			return cdr.Encapsule(ch.Version(), cdr.Decode, &enc,
				cdr.Bind(MarshalProfileBody, v.IIOP))
		}
		if v.IIOP == nil {
			return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
				"MarshalTaggedProfile: TAG_INTERNET_IOP profile without body")
		}
		if err := cdr.Encapsule(ch.Version(), cdr.Encode, &enc,
			cdr.Bind(MarshalProfileBody, v.IIOP)); err != nil {
			return err
		}
		return cdr.OctetSeq(ch, &enc)

	case TAG_MULTIPLE_COMPONENTS:
		var enc []byte
		if ch.Mode() == cdr.Decode {
			if err := cdr.OctetSeq(ch, &enc); err != nil {
				return err
			}
			return cdr.Encapsule(ch.Version(), cdr.Decode, &enc,
				cdr.Bind(MarshalMultipleComponentProfile, &v.Components))
		}
		if err := cdr.Encapsule(ch.Version(), cdr.Encode, &enc,
			cdr.Bind(MarshalMultipleComponentProfile, &v.Components)); err != nil {
			return err
		}
		return cdr.OctetSeq(ch, &enc)

	default:
		return cdr.OctetSeq(ch, &v.Raw)
	}
}

// IOR is an Interoperable Object Reference.
type IOR struct {
	TypeID   string
	Profiles []TaggedProfile
}

// MarshalIOR ...
func MarshalIOR(ch *cdr.Channel, v *IOR) error {
	if err := cdr.String(ch, &v.TypeID); err != nil {
		return err
	}
	return cdr.Sequence(ch, &v.Profiles, MarshalTaggedProfile)
}

// IORAddressingInfo selects one profile of a full IOR as a request target.
type IORAddressingInfo struct {
	SelectedProfileIndex uint32
	IOR                  IOR
}

// MarshalIORAddressingInfo ...
func MarshalIORAddressingInfo(ch *cdr.Channel, v *IORAddressingInfo) error {
	if err := cdr.ULong(ch, &v.SelectedProfileIndex); err != nil {
		return err
	}
	return MarshalIOR(ch, &v.IOR)
}

// ServiceContext is out-of-band information piggybacked on a request or
// reply.
type ServiceContext struct {
	ContextID   uint32
	ContextData []byte
}

// MarshalServiceContext ...
func MarshalServiceContext(ch *cdr.Channel, v *ServiceContext) error {
	if err := cdr.ULong(ch, &v.ContextID); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.ContextData)
}

// ServiceContextList ...
type ServiceContextList []ServiceContext

// MarshalServiceContextList ...
func MarshalServiceContextList(ch *cdr.Channel, v *ServiceContextList) error {
	return cdr.Sequence(ch, (*[]ServiceContext)(v), MarshalServiceContext)
}
