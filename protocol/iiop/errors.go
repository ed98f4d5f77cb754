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
	"fmt"

	"github.com/corbalite/giopkg/protocol/giop"
)

// RemoteReplyStatusError reports a reply whose status is neither
// NO_EXCEPTION nor SYSTEM_EXCEPTION (a location forward, a user exception,
// an addressing-mode demand).
type RemoteReplyStatusError struct {
	Status giop.ReplyStatus
}

func (e *RemoteReplyStatusError) Error() string {
	return fmt.Sprintf("reply status %s", e.Status)
}

// RemoteExceptionError reports a SYSTEM_EXCEPTION reply; Body carries the
// decoded exception.
type RemoteExceptionError struct {
	Body giop.SystemExceptionReplyBody
}

func (e *RemoteExceptionError) Error() string {
	return fmt.Sprintf("system exception %s (minor %d, completed %d)",
		e.Body.ExceptionID, e.Body.MinorCodeValue, e.Body.CompletionStatus)
}
