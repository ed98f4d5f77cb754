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

import "fmt"

// Name tables for the numeric tags of the IOP module; handy for diagnostics
// and tooling output.

var profileTagNames = map[uint32]string{
	TAG_INTERNET_IOP:        "TAG_INTERNET_IOP",
	TAG_MULTIPLE_COMPONENTS: "TAG_MULTIPLE_COMPONENTS",
	TAG_SCCP_IOP:            "TAG_SCCP_IOP",
}

// ProfileTagName returns the symbolic name of a profile tag, or the number
// itself when it has none.
func ProfileTagName(tag uint32) string {
	return nameOrNumber(profileTagNames, tag)
}

var componentTagNames = map[uint32]string{
	TAG_ORB_TYPE:               "TAG_ORB_TYPE",
	TAG_CODE_SETS:              "TAG_CODE_SETS",
	TAG_POLICIES:               "TAG_POLICIES",
	TAG_ALTERNATE_IIOP_ADDRESS: "TAG_ALTERNATE_IIOP_ADDRESS",
	TAG_ASSOCIATION_OPTIONS:    "TAG_ASSOCIATION_OPTIONS",
	TAG_SEC_NAME:               "TAG_SEC_NAME",
	TAG_SSL_SEC_TRANS:          "TAG_SSL_SEC_TRANS",
	TAG_JAVA_CODEBASE:          "TAG_JAVA_CODEBASE",
	TAG_CSI_SEC_MECH_LIST:      "TAG_CSI_SEC_MECH_LIST",
	TAG_TLS_SEC_TRANS:          "TAG_TLS_SEC_TRANS",
}

// ComponentTagName returns the symbolic name of a component tag.
func ComponentTagName(tag uint32) string {
	return nameOrNumber(componentTagNames, tag)
}

var serviceIDNames = map[uint32]string{
	TransactionService:       "TransactionService",
	CodeSets:                 "CodeSets",
	ChainBypassCheck:         "ChainBypassCheck",
	ChainBypassInfo:          "ChainBypassInfo",
	LogicalThreadId:          "LogicalThreadId",
	BI_DIR_IIOP:              "BI_DIR_IIOP",
	SendingContextRunTime:    "SendingContextRunTime",
	INVOCATION_POLICIES:      "INVOCATION_POLICIES",
	FORWARDED_IDENTITY:       "FORWARDED_IDENTITY",
	UnknownExceptionInfo:     "UnknownExceptionInfo",
	ExceptionDetailMessage:   "ExceptionDetailMessage",
	SecurityAttributeService: "SecurityAttributeService",
}

// ServiceIDName returns the symbolic name of a service-context id.
func ServiceIDName(id uint32) string {
	return nameOrNumber(serviceIDNames, id)
}

func nameOrNumber(table map[uint32]string, n uint32) string {
	if s, ok := table[n]; ok {
		return s
	}
	return fmt.Sprintf("%d", n)
}
