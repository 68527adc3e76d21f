// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

/*

The bridge emits two sources of logging:

1. Internal logs: the bridge's own application logs into stderr for operational use
2. Access logs: one line per request served by the per-invocation loopback router, emitted through the same internal sink

Both end up in the function's log stream; the internal formatter tags them so
they are distinguishable from the function payload itself.

*/
package logging
