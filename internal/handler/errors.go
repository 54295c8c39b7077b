// SPDX-License-Identifier: Apache-2.0

package handler

import "errors"

// errNoServicesProvided is returned by NewHandlers when it is called without
// a service set. This is treated as a fatal misconfiguration and causes the
// application to fail at startup.
var errNoServicesProvided = errors.New("no services provided")
