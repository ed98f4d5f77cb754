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

package iiop

import (
	"bytes"
	"fmt"

	"github.com/m-lab/go/logx"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

// The GIOP message body starts at stream coordinate 12, right after the
// message header; every body channel is created with that origin so padding
// is counted from the start of the message.
const bodyOrigin = 12

// Request submits a request for the named operation on the object identified
// by objectKey. The args are (codec, value) pairs bound with cdr.Bind;
// argument order is wire order. The request ID is allocated from the stream.
func Request(s *Stream, objectKey []byte, operation string, contexts giop.ServiceContextList, args ...cdr.Param) error {
	v := s.Version()
	ch := cdr.NewEncoder(v, s.littleEndian, bodyOrigin)
	switch {
	case v.GE(1, 2):
		rqhdr := giop.RequestHeader{
			RequestID:      s.RequestID(),
			ResponseFlags:  giop.SYNC_WITH_TARGET,
			Target:         giop.TargetAddress{Which: giop.KeyAddr, ObjectKey: objectKey},
			Operation:      operation,
			ServiceContext: contexts,
		}
		if err := giop.MarshalRequestHeader(ch, &rqhdr); err != nil {
			return err
		}
		// 8-octet alignment between header and body in GIOP 1.2 and later.
		if _, err := ch.Skip(0, 8); err != nil {
			return err
		}
	case v.GE(1, 1):
		rqhdr := giop.RequestHeader_1_1{
			ServiceContext:   contexts,
			RequestID:        s.RequestID(),
			ResponseExpected: true,
			ObjectKey:        objectKey,
			Operation:        operation,
		}
		if err := giop.MarshalRequestHeader_1_1(ch, &rqhdr); err != nil {
			return err
		}
	default:
		rqhdr := giop.RequestHeader_1_0{
			ServiceContext:   contexts,
			RequestID:        s.RequestID(),
			ResponseExpected: true,
			ObjectKey:        objectKey,
			Operation:        operation,
		}
		if err := giop.MarshalRequestHeader_1_0(ch, &rqhdr); err != nil {
			return err
		}
	}
	for _, arg := range args {
		if err := arg(ch); err != nil {
			return cdr.PrependError(fmt.Sprintf("Request: encoding %s argument: ", operation), err)
		}
	}
	hdr := giop.MessageHeader{Version: v, Flags: s.flags(), Type: giop.Request}
	if err := s.WriteMessage(-1, hdr, ch.Bytes()); err != nil {
		return err
	}
	logx.Debug.Printf("Request: sent %s operation to %s", operation, s.name)
	return nil
}

// GetReply reads the next reply from the stream. On NO_EXCEPTION the results
// pairs are decoded in order. On SYSTEM_EXCEPTION the exception holder, if
// supplied, is filled and a *RemoteExceptionError returned; any other status
// yields a *RemoteReplyStatusError. No result codecs run unless the status
// is NO_EXCEPTION.
func GetReply(s *Stream, exception *giop.SystemExceptionReplyBody, results ...cdr.Param) (giop.ReplyStatus, error) {
	hdr, body, err := s.ReadMessage(-1)
	if err != nil {
		return 0, err
	}
	if hdr.Type != giop.Reply {
		return 0, cdr.NewMarshalException(cdr.PROTOCOL_ERROR,
			fmt.Sprintf("GetReply: %s message from %s", hdr.Type, s.name))
	}
	ch := cdr.NewDecoder(hdr.Version, hdr.LittleEndian(), bodyOrigin, body)
	var status giop.ReplyStatus
	if hdr.Version.GE(1, 2) {
		var rphdr giop.ReplyHeader
		if err := giop.MarshalReplyHeader(ch, &rphdr); err != nil {
			return 0, err
		}
		alignBody(ch)
		status = rphdr.ReplyStatus
	} else {
		var rphdr giop.ReplyHeader_1_0
		if err := giop.MarshalReplyHeader_1_0(ch, &rphdr); err != nil {
			return 0, err
		}
		status = rphdr.ReplyStatus
	}
	logx.Debug.Printf("GetReply: %s reply from %s", status, s.name)
	if status != giop.NO_EXCEPTION {
		if status == giop.SYSTEM_EXCEPTION {
			var holder giop.SystemExceptionReplyBody
			if exception == nil {
				exception = &holder
			}
			if err := giop.MarshalSystemExceptionReplyBody(ch, exception); err != nil {
				return status, err
			}
			return status, &RemoteExceptionError{Body: *exception}
		}
		return status, &RemoteReplyStatusError{Status: status}
	}
	for _, r := range results {
		if err := r(ch); err != nil {
			return status, cdr.PrependError("GetReply: decoding result: ", err)
		}
	}
	return status, nil
}

// InboundRequest is one request read off a stream. Matched reports whether
// the target and operation were the expected ones; when false, the body is
// left undecoded for the caller to inspect.
type InboundRequest struct {
	Header  giop.MessageHeader
	Request giop.RequestHeader
	Body    []byte
	Matched bool
}

// GetRequest reads the next request from the stream. The request header is
// returned in 1.2 form regardless of the message's GIOP version. The arg
// pairs are decoded only when the request targets the expected objectKey
// (empty = any) and operation (empty = any); otherwise the raw body is
// returned untouched.
func GetRequest(s *Stream, objectKey []byte, operation string, args ...cdr.Param) (*InboundRequest, error) {
	hdr, body, err := s.ReadMessage(-1)
	if err != nil {
		return nil, err
	}
	if hdr.Type == giop.Fragment {
		return nil, cdr.NewMarshalException(cdr.PROTOCOL_ERROR,
			fmt.Sprintf("GetRequest: fragment from %s: reassembly not supported", s.name))
	}
	if hdr.Type != giop.Request {
		return nil, cdr.NewMarshalException(cdr.PROTOCOL_ERROR,
			fmt.Sprintf("GetRequest: %s message from %s", hdr.Type, s.name))
	}
	in := &InboundRequest{Header: hdr, Body: body}
	ch := cdr.NewDecoder(hdr.Version, hdr.LittleEndian(), bodyOrigin, body)
	switch {
	case hdr.Version.GE(1, 2):
		if err := giop.MarshalRequestHeader(ch, &in.Request); err != nil {
			return nil, err
		}
		alignBody(ch)
	case hdr.Version.GE(1, 1):
		var rqhdr giop.RequestHeader_1_1
		if err := giop.MarshalRequestHeader_1_1(ch, &rqhdr); err != nil {
			return nil, err
		}
		in.Request = unifyRequest(rqhdr.RequestID, rqhdr.ResponseExpected, rqhdr.ObjectKey, rqhdr.Operation)
	default:
		var rqhdr giop.RequestHeader_1_0
		if err := giop.MarshalRequestHeader_1_0(ch, &rqhdr); err != nil {
			return nil, err
		}
		in.Request = unifyRequest(rqhdr.RequestID, rqhdr.ResponseExpected, rqhdr.ObjectKey, rqhdr.Operation)
	}
	logx.Debug.Printf("GetRequest: %s request %d from %s", in.Request.Operation, in.Request.RequestID, s.name)

	if len(objectKey) > 0 && !bytes.Equal(in.Request.Target.ObjectKey, objectKey) {
		return in, nil // unexpected target object
	}
	if operation != "" && operation != in.Request.Operation {
		return in, nil // unexpected operation
	}
	for _, arg := range args {
		if err := arg(ch); err != nil {
			return nil, cdr.PrependError("GetRequest: decoding argument: ", err)
		}
	}
	in.Matched = true
	return in, nil
}

// Reply sends a reply for a previously received request. The results pairs
// are encoded after the version-appropriate reply header.
func Reply(s *Stream, requestID uint32, status giop.ReplyStatus, results ...cdr.Param) error {
	v := s.Version()
	ch := cdr.NewEncoder(v, s.littleEndian, bodyOrigin)
	if v.GE(1, 2) {
		rphdr := giop.ReplyHeader{RequestID: requestID, ReplyStatus: status}
		if err := giop.MarshalReplyHeader(ch, &rphdr); err != nil {
			return err
		}
		if _, err := ch.Skip(0, 8); err != nil {
			return err
		}
	} else {
		rphdr := giop.ReplyHeader_1_0{RequestID: requestID, ReplyStatus: status}
		if err := giop.MarshalReplyHeader_1_0(ch, &rphdr); err != nil {
			return err
		}
	}
	for _, r := range results {
		if err := r(ch); err != nil {
			return cdr.PrependError(fmt.Sprintf("Reply: encoding result for request %d: ", requestID), err)
		}
	}
	hdr := giop.MessageHeader{Version: v, Flags: s.flags(), Type: giop.Reply}
	if err := s.WriteMessage(-1, hdr, ch.Bytes()); err != nil {
		return err
	}
	logx.Debug.Printf("Reply: sent %s reply %d to %s", status, requestID, s.name)
	return nil
}

// alignBody skips to the 8-octet body boundary of a 1.2 message. A message
// whose body ends at the header carries no padding; running out of buffer
// here just means there is nothing after the header.
func alignBody(ch *cdr.Channel) {
	_, _ = ch.Skip(0, 8)
}

func unifyRequest(id uint32, responseExpected bool, key []byte, operation string) giop.RequestHeader {
	flags := byte(giop.SYNC_NONE)
	if responseExpected {
		flags = giop.SYNC_WITH_TARGET
	}
	return giop.RequestHeader{
		RequestID:     id,
		ResponseFlags: flags,
		Target:        giop.TargetAddress{Which: giop.KeyAddr, ObjectKey: key},
		Operation:     operation,
	}
}
