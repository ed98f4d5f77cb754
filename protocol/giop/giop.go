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

// Package giop defines the GIOP, IOP and IIOP constructed types of GIOP 1.0
// through 1.2 and one marshaling codec per type. The codecs follow the
// conventions of package cdr: each is a mode-multiplexed function over a
// *cdr.Channel, reading or writing fields in declared IDL order.
package giop

import "fmt"

// GIOP message magic, the ASCII bytes "GIOP".
var Magic = [4]byte{0x47, 0x49, 0x4F, 0x50}

// MessageHeader flag bits. GIOP 1.0 defines the whole octet as a byte-order
// boolean; 1.1 and later add the fragment bit.
const (
	EndianMask   = 0x01 // 0 = big-endian, 1 = little-endian
	FragmentMask = 0x02 // 0 = last fragment, 1 = more fragments follow
)

// MsgType identifies a GIOP message.
type MsgType uint8

const (
	Request MsgType = iota
	Reply
	CancelRequest
	LocateRequest
	LocateReply
	CloseConnection
	MessageError // GIOP 1.0 stops here.
	Fragment
)

var msgTypeNames = map[MsgType]string{
	Request:         "Request",
	Reply:           "Reply",
	CancelRequest:   "CancelRequest",
	LocateRequest:   "LocateRequest",
	LocateReply:     "LocateReply",
	CloseConnection: "CloseConnection",
	MessageError:    "MessageError",
	Fragment:        "Fragment",
}

func (t MsgType) String() string {
	if s, ok := msgTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("%d", uint8(t))
}

// ReplyStatus is the status field of a GIOP reply.
type ReplyStatus uint32

const (
	NO_EXCEPTION ReplyStatus = iota
	USER_EXCEPTION
	SYSTEM_EXCEPTION
	LOCATION_FORWARD // GIOP 1.0/1.1 stop here.
	LOCATION_FORWARD_PERM
	NEEDS_ADDRESSING_MODE
)

var replyStatusNames = map[ReplyStatus]string{
	NO_EXCEPTION:          "NO_EXCEPTION",
	USER_EXCEPTION:        "USER_EXCEPTION",
	SYSTEM_EXCEPTION:      "SYSTEM_EXCEPTION",
	LOCATION_FORWARD:      "LOCATION_FORWARD",
	LOCATION_FORWARD_PERM: "LOCATION_FORWARD_PERM",
	NEEDS_ADDRESSING_MODE: "NEEDS_ADDRESSING_MODE",
}

func (s ReplyStatus) String() string {
	if n, ok := replyStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("%d", uint32(s))
}

// LocateStatus is the status field of a GIOP locate reply.
type LocateStatus uint32

const (
	UNKNOWN_OBJECT LocateStatus = iota
	OBJECT_HERE
	OBJECT_FORWARD // GIOP 1.0/1.1 stop here.
	OBJECT_FORWARD_PERM
	LOC_SYSTEM_EXCEPTION
	LOC_NEEDS_ADDRESSING_MODE
)

var locateStatusNames = map[LocateStatus]string{
	UNKNOWN_OBJECT:            "UNKNOWN_OBJECT",
	OBJECT_HERE:               "OBJECT_HERE",
	OBJECT_FORWARD:            "OBJECT_FORWARD",
	OBJECT_FORWARD_PERM:       "OBJECT_FORWARD_PERM",
	LOC_SYSTEM_EXCEPTION:      "LOC_SYSTEM_EXCEPTION",
	LOC_NEEDS_ADDRESSING_MODE: "LOC_NEEDS_ADDRESSING_MODE",
}

func (s LocateStatus) String() string {
	if n, ok := locateStatusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("%d", uint32(s))
}

const ( // Messaging sync scopes, the response_flags values of a 1.2 request.
	SYNC_NONE           = 0
	SYNC_WITH_TRANSPORT = 1
	SYNC_WITH_SERVER    = 2
	SYNC_WITH_TARGET    = 3
)

const ( // IOP profile tags
	TAG_INTERNET_IOP        = 0
	TAG_MULTIPLE_COMPONENTS = 1
	TAG_SCCP_IOP            = 2
)

const ( // IOP component tags
	TAG_ORB_TYPE               = 0
	TAG_CODE_SETS              = 1
	TAG_POLICIES               = 2
	TAG_ALTERNATE_IIOP_ADDRESS = 3
	TAG_ASSOCIATION_OPTIONS    = 13
	TAG_SEC_NAME               = 14
	TAG_SSL_SEC_TRANS          = 20
	TAG_JAVA_CODEBASE          = 25
	TAG_CSI_SEC_MECH_LIST      = 33
	TAG_TLS_SEC_TRANS          = 36
)

const ( // IOP service-context ids
	TransactionService       = 0
	CodeSets                 = 1
	ChainBypassCheck         = 2
	ChainBypassInfo          = 3
	LogicalThreadId          = 4
	BI_DIR_IIOP              = 5
	SendingContextRunTime    = 6
	INVOCATION_POLICIES      = 7
	FORWARDED_IDENTITY       = 8
	UnknownExceptionInfo     = 9
	ExceptionDetailMessage   = 14
	SecurityAttributeService = 15
)

// The default corbaloc port.
const DefaultPort = 2809
