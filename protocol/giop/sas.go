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

// The CSI security attribute service context body: the message union a
// SecurityAttributeService service context carries, CDR-encapsulated.

import (
	"fmt"

	"github.com/corbalite/giopkg/protocol/cdr"
)

// SASMsgType selects the arm of a SASContextBody.
type SASMsgType int16

const (
	MTEstablishContext         SASMsgType = 0
	MTCompleteEstablishContext SASMsgType = 1
	MTContextError             SASMsgType = 4
	MTMessageInContext         SASMsgType = 5
)

// AuthorizationElement is one typed element of an authorization token.
type AuthorizationElement struct {
	TheType    uint32
	TheElement []byte
}

// MarshalAuthorizationElement ...
func MarshalAuthorizationElement(ch *cdr.Channel, v *AuthorizationElement) error {
	if err := cdr.ULong(ch, &v.TheType); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.TheElement)
}

// AuthorizationToken ...
type AuthorizationToken []AuthorizationElement

// MarshalAuthorizationToken ...
func MarshalAuthorizationToken(ch *cdr.Channel, v *AuthorizationToken) error {
	return cdr.Sequence(ch, (*[]AuthorizationElement)(v), MarshalAuthorizationElement)
}

// EstablishContext opens a security context.
type EstablishContext struct {
	ClientContextID           uint64
	AuthorizationToken        AuthorizationToken
	IdentityToken             IdentityToken
	ClientAuthenticationToken []byte
}

// MarshalEstablishContext ...
func MarshalEstablishContext(ch *cdr.Channel, v *EstablishContext) error {
	if err := cdr.ULongLong(ch, &v.ClientContextID); err != nil {
		return err
	}
	if err := MarshalAuthorizationToken(ch, &v.AuthorizationToken); err != nil {
		return err
	}
	if err := MarshalIdentityToken(ch, &v.IdentityToken); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.ClientAuthenticationToken)
}

// CompleteEstablishContext acknowledges an established context.
type CompleteEstablishContext struct {
	ClientContextID   uint64
	ContextStateful   bool
	FinalContextToken []byte
}

// MarshalCompleteEstablishContext ...
func MarshalCompleteEstablishContext(ch *cdr.Channel, v *CompleteEstablishContext) error {
	if err := cdr.ULongLong(ch, &v.ClientContextID); err != nil {
		return err
	}
	if err := cdr.Boolean(ch, &v.ContextStateful); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.FinalContextToken)
}

// ContextError rejects a context establishment.
type ContextError struct {
	ClientContextID uint64
	MajorStatus     int32
	MinorStatus     int32
	ErrorToken      []byte
}

// MarshalContextError ...
func MarshalContextError(ch *cdr.Channel, v *ContextError) error {
	if err := cdr.ULongLong(ch, &v.ClientContextID); err != nil {
		return err
	}
	if err := cdr.Long(ch, &v.MajorStatus); err != nil {
		return err
	}
	if err := cdr.Long(ch, &v.MinorStatus); err != nil {
		return err
	}
	return cdr.OctetSeq(ch, &v.ErrorToken)
}

// MessageInContext refers to an already-established context.
type MessageInContext struct {
	ClientContextID uint64
	DiscardContext  bool
}

// MarshalMessageInContext ...
func MarshalMessageInContext(ch *cdr.Channel, v *MessageInContext) error {
	if err := cdr.ULongLong(ch, &v.ClientContextID); err != nil {
		return err
	}
	return cdr.Boolean(ch, &v.DiscardContext)
}

// SASContextBody is the discriminated message union of the security
// attribute service.
type SASContextBody struct {
	Which     SASMsgType
	Establish *EstablishContext
	Complete  *CompleteEstablishContext
	Error     *ContextError
	InContext *MessageInContext
}

// MarshalSASContextBody ...
func MarshalSASContextBody(ch *cdr.Channel, v *SASContextBody) error {
	if err := cdr.Short(ch, (*int16)(&v.Which)); err != nil {
		return err
	}
	switch v.Which {
	case MTEstablishContext:
		if v.Establish == nil {
			v.Establish = new(EstablishContext)
		}
		return MarshalEstablishContext(ch, v.Establish)
	case MTCompleteEstablishContext:
		if v.Complete == nil {
			v.Complete = new(CompleteEstablishContext)
		}
		return MarshalCompleteEstablishContext(ch, v.Complete)
	case MTContextError:
		if v.Error == nil {
			v.Error = new(ContextError)
		}
		return MarshalContextError(ch, v.Error)
	case MTMessageInContext:
		if v.InContext == nil {
			v.InContext = new(MessageInContext)
		}
		return MarshalMessageInContext(ch, v.InContext)
	}
	return cdr.NewMarshalException(cdr.INVALID_DISCRIMINATOR,
		fmt.Sprintf("MarshalSASContextBody: invalid message type %d", v.Which))
}
