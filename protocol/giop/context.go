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

// Bodies of the well-known service contexts and components. Each is CDR-
// encapsulated inside the context_data/component_data octets of its carrier;
// use cdr.Encapsule with the codecs below to pack or unpack one.

import (
	"github.com/corbalite/giopkg/protocol/cdr"
)

// CodeSetComponent names a native code set and its conversion alternatives.
type CodeSetComponent struct {
	NativeCodeSet      uint32
	ConversionCodeSets []uint32
}

// MarshalCodeSetComponent ...
func MarshalCodeSetComponent(ch *cdr.Channel, v *CodeSetComponent) error {
	if err := cdr.ULong(ch, &v.NativeCodeSet); err != nil {
		return err
	}
	return cdr.ULongSeq(ch, &v.ConversionCodeSets)
}

// CodeSetComponentInfo is the body of a TAG_CODE_SETS component.
type CodeSetComponentInfo struct {
	ForCharData  CodeSetComponent
	ForWcharData CodeSetComponent
}

// MarshalCodeSetComponentInfo ...
func MarshalCodeSetComponentInfo(ch *cdr.Channel, v *CodeSetComponentInfo) error {
	if err := MarshalCodeSetComponent(ch, &v.ForCharData); err != nil {
		return err
	}
	return MarshalCodeSetComponent(ch, &v.ForWcharData)
}

// CodeSetContext is the body of a CodeSets service context: the char and
// wchar transmission code sets negotiated for the connection.
type CodeSetContext struct {
	CharData  uint32
	WcharData uint32
}

// MarshalCodeSetContext ...
func MarshalCodeSetContext(ch *cdr.Channel, v *CodeSetContext) error {
	if err := cdr.ULong(ch, &v.CharData); err != nil {
		return err
	}
	return cdr.ULong(ch, &v.WcharData)
}

// ListenPoint is one re-usable inbound endpoint of a bidirectional peer.
type ListenPoint struct {
	Host string
	Port uint16
}

// MarshalListenPoint ...
func MarshalListenPoint(ch *cdr.Channel, v *ListenPoint) error {
	if err := cdr.String(ch, &v.Host); err != nil {
		return err
	}
	return cdr.UShort(ch, &v.Port)
}

// BiDirIIOPServiceContext is the body of a BI_DIR_IIOP service context.
type BiDirIIOPServiceContext struct {
	ListenPoints []ListenPoint
}

// MarshalBiDirIIOPServiceContext ...
func MarshalBiDirIIOPServiceContext(ch *cdr.Channel, v *BiDirIIOPServiceContext) error {
	return cdr.Sequence(ch, &v.ListenPoints, MarshalListenPoint)
}

// IdentityTokenType selects the arm of an IdentityToken.
type IdentityTokenType uint32

const (
	ITTAbsent            IdentityTokenType = 0
	ITTAnonymous         IdentityTokenType = 1
	ITTPrincipalName     IdentityTokenType = 2
	ITTX509CertChain     IdentityTokenType = 4
	ITTDistinguishedName IdentityTokenType = 8
)

// IdentityToken is the CSI identity assertion union. Unknown token types
// carry their body as opaque octets.
type IdentityToken struct {
	Which             IdentityTokenType
	Absent            bool
	Anonymous         bool
	PrincipalName     []byte
	CertificateChain  []byte
	DistinguishedName []byte
	ID                []byte
}

// MarshalIdentityToken ...
func MarshalIdentityToken(ch *cdr.Channel, v *IdentityToken) error {
	if err := cdr.ULong(ch, (*uint32)(&v.Which)); err != nil {
		return err
	}
	switch v.Which {
	case ITTAbsent:
		return cdr.Boolean(ch, &v.Absent)
	case ITTAnonymous:
		return cdr.Boolean(ch, &v.Anonymous)
	case ITTPrincipalName:
		return cdr.OctetSeq(ch, &v.PrincipalName)
	case ITTX509CertChain:
		return cdr.OctetSeq(ch, &v.CertificateChain)
	case ITTDistinguishedName:
		return cdr.OctetSeq(ch, &v.DistinguishedName)
	}
	return cdr.OctetSeq(ch, &v.ID)
}
