// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package logging

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/sirupsen/logrus"
)

// SetOutput configures logging output for standard loggers.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
	logrus.SetOutput(w)
}

// InternalFormatter renders bridge-internal log lines.
type InternalFormatter struct{}

// format: [time] [level] (bridge) message field=value...
func (f *InternalFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	var b *bytes.Buffer
	if entry.Buffer != nil {
		b = entry.Buffer
	} else {
		b = &bytes.Buffer{}
	}

	// time with comma separator for fraction of a second
	time := entry.Time.Format("02 Jan 2006 15:04:05.000")
	time = strings.Replace(time, ".", ",", 1)
	fmt.Fprint(b, time)

	level := strings.ToUpper(entry.Level.String())
	fmt.Fprintf(b, " [%s]", level)

	fmt.Fprintf(b, " (bridge) %s", entry.Message)

	// from WithField and WithError
	for field, value := range entry.Data {
		fmt.Fprintf(b, " %s=%v", field, value)
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
