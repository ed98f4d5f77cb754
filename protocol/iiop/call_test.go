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
	"net"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corbalite/giopkg/protocol/cdr"
	"github.com/corbalite/giopkg/protocol/giop"
)

var (
	v10 = cdr.Version{Major: 1, Minor: 0}
	v12 = cdr.Version{Major: 1, Minor: 2}
)

func streamPair(t *testing.T) (client, server *Stream) {
	t.Helper()
	c, s := net.Pipe()
	client, server = NewStream(c), NewStream(s)
	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client, server
}

func TestRequestReplyRoundTrip(t *testing.T) {
	for _, version := range []cdr.Version{v10, {Major: 1, Minor: 1}, v12} {
		client, server := streamPair(t)
		client.SetVersion(version)
		server.SetVersion(version)
		key := []byte("obj")

		serverDone := make(chan error, 1)
		go func() {
			var arg uint32
			in, err := GetRequest(server, key, "ping", cdr.Bind(cdr.ULong, &arg))
			if err != nil {
				serverDone <- err
				return
			}
			result := arg + 1
			serverDone <- Reply(server, in.Request.RequestID, giop.NO_EXCEPTION,
				cdr.Bind(cdr.ULong, &result))
		}()

		arg := uint32(41)
		require.NoError(t, Request(client, key, "ping", nil, cdr.Bind(cdr.ULong, &arg)))

		var result uint32
		status, err := GetReply(client, nil, cdr.Bind(cdr.ULong, &result))
		require.NoError(t, err)
		require.Equal(t, giop.NO_EXCEPTION, status)
		require.Equal(t, uint32(42), result)
		require.NoError(t, <-serverDone)
	}
}

func TestRequestWire12(t *testing.T) {
	client, server := streamPair(t)
	client.SetVersion(v12)

	read := make(chan []byte, 1)
	go func() {
		hdr, body, err := server.ReadMessage(-1)
		if err != nil {
			read <- nil
			return
		}
		raw := make([]byte, 0, 12+len(body))
		ch := cdr.NewEncoder(hdr.Version, hdr.LittleEndian(), 0)
		_ = giop.MarshalMessageHeader(ch, &hdr)
		read <- append(append(raw, ch.Bytes()...), body...)
	}()

	arg := uint32(42)
	require.NoError(t, Request(client, []byte("k"), "ping", nil, cdr.Bind(cdr.ULong, &arg)))

	msg := <-read
	require.NotNil(t, msg)
	require.Equal(t, byte(giop.Request), msg[7])
	// the lone argument is the last body field, 8-aligned from the start of
	// the message, little-endian
	require.Equal(t, []byte{0x2A, 0x00, 0x00, 0x00}, msg[len(msg)-4:])
	require.Equal(t, 0, (len(msg)-4)%8)
}

func TestGetReplySystemException(t *testing.T) {
	client, server := streamPair(t)
	client.SetVersion(v12)
	server.SetVersion(v12)

	serverDone := make(chan error, 1)
	go func() {
		body := giop.SystemExceptionReplyBody{
			ExceptionID:      "IDL:CORBA/BAD_PARAM:1.0",
			MinorCodeValue:   0,
			CompletionStatus: 0,
		}
		serverDone <- Reply(server, 7, giop.SYSTEM_EXCEPTION,
			cdr.Bind(giop.MarshalSystemExceptionReplyBody, &body))
	}()

	var exception giop.SystemExceptionReplyBody
	var mustNotDecode uint32
	status, err := GetReply(client, &exception, cdr.Bind(cdr.ULong, &mustNotDecode))
	require.Equal(t, giop.SYSTEM_EXCEPTION, status)
	require.Error(t, err)
	remote, ok := err.(*RemoteExceptionError)
	require.True(t, ok)
	require.Equal(t, "IDL:CORBA/BAD_PARAM:1.0", remote.Body.ExceptionID)
	require.Equal(t, uint32(0), remote.Body.MinorCodeValue)
	require.Equal(t, uint32(0), remote.Body.CompletionStatus)
	require.Equal(t, "IDL:CORBA/BAD_PARAM:1.0", exception.ExceptionID)
	require.Equal(t, uint32(0), mustNotDecode)
	require.NoError(t, <-serverDone)
}

func TestGetReplyOtherStatus(t *testing.T) {
	client, server := streamPair(t)
	client.SetVersion(v12)
	server.SetVersion(v12)

	go func() {
		_ = Reply(server, 8, giop.USER_EXCEPTION)
	}()

	status, err := GetReply(client, nil)
	require.Equal(t, giop.USER_EXCEPTION, status)
	var remote *RemoteReplyStatusError
	require.ErrorAs(t, err, &remote)
	require.Equal(t, giop.USER_EXCEPTION, remote.Status)
}

func TestGetReplyWrongMessageType(t *testing.T) {
	client, server := streamPair(t)

	go func() {
		hdr := giop.MessageHeader{Version: server.Version(), Flags: giop.EndianMask, Type: giop.CloseConnection}
		_ = server.WriteMessage(-1, hdr, nil)
	}()

	_, err := GetReply(client, nil)
	require.Error(t, err)
	require.Equal(t, int32(cdr.PROTOCOL_ERROR), err.(*cdr.MarshalException).TypeID())
}

func TestGetRequestFragmentRejected(t *testing.T) {
	client, server := streamPair(t)

	go func() {
		ch := cdr.NewEncoder(v12, true, bodyOrigin)
		fragment := giop.FragmentHeader{RequestID: 1}
		_ = giop.MarshalFragmentHeader(ch, &fragment)
		hdr := giop.MessageHeader{Version: v12, Flags: giop.EndianMask, Type: giop.Fragment}
		_ = server.WriteMessage(-1, hdr, ch.Bytes())
	}()

	_, err := GetRequest(client, nil, "")
	require.Error(t, err)
	require.Equal(t, int32(cdr.PROTOCOL_ERROR), err.(*cdr.MarshalException).TypeID())
}

func TestGetRequestMismatch(t *testing.T) {
	client, server := streamPair(t)
	client.SetVersion(v12)
	server.SetVersion(v12)

	go func() {
		arg := uint32(1)
		_ = Request(client, []byte("other"), "unexpected", nil, cdr.Bind(cdr.ULong, &arg))
	}()

	var mustNotDecode uint32
	in, err := GetRequest(server, []byte("obj"), "ping", cdr.Bind(cdr.ULong, &mustNotDecode))
	require.NoError(t, err)
	require.False(t, in.Matched)
	require.Equal(t, "unexpected", in.Request.Operation)
	require.Equal(t, []byte("other"), in.Request.Target.ObjectKey)
	require.NotEmpty(t, in.Body)
	require.Equal(t, uint32(0), mustNotDecode)
}

func TestReadMessageBadMagic(t *testing.T) {
	client, server := streamPair(t)

	go func() {
		raw := []byte{'X', 'I', 'O', 'P', 1, 2, 1, 0, 0, 0, 0, 0}
		c := client // write raw octets under the framing layer
		_, _ = c.conn.Write(raw)
	}()

	_, _, err := server.ReadMessage(-1)
	require.Error(t, err)
	require.Equal(t, int32(cdr.PROTOCOL_ERROR), err.(*cdr.MarshalException).TypeID())
}

func TestReadMessageTimeout(t *testing.T) {
	client, _ := streamPair(t)

	_, _, err := client.ReadMessage(0.05)
	require.Error(t, err)
	require.Equal(t, int32(cdr.TIMEOUT), err.(*cdr.MarshalException).TypeID())
}

func TestReadMessageConnectionLost(t *testing.T) {
	client, server := streamPair(t)
	require.NoError(t, server.Close())

	_, _, err := client.ReadMessage(-1)
	require.Error(t, err)
	require.Equal(t, int32(cdr.CONNECTION_LOST), err.(*cdr.MarshalException).TypeID())
}

func TestRequestIDMonotonic(t *testing.T) {
	c, _ := net.Pipe()
	defer c.Close()
	s := NewStream(c)
	first := s.RequestID()
	second := s.RequestID()
	third := s.RequestID()
	require.Less(t, first, second)
	require.Less(t, second, third)
}
