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

// Package hack holds the unsafe conversions the decode hot path needs. The
// caller owns the input and must not mutate it afterwards.
package hack

import "unsafe"

// ByteSliceToString converts []byte to string without copy
func ByteSliceToString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}
