/* Copyright 2025 Dnote Authors
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

// Package log prints user facing messages with a leading status symbol
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

const (
	debugEnvName  = "HACKMD_DEBUG"
	debugEnvValue = "1"
)

var (
	// ColorRed is a red foreground color
	ColorRed = color.New(color.FgRed)
	// ColorGreen is a green foreground color
	ColorGreen = color.New(color.FgGreen)
	// ColorYellow is a yellow foreground color
	ColorYellow = color.New(color.FgYellow)
	// ColorBlue is a blue foreground color
	ColorBlue = color.New(color.FgBlue)
	// ColorCyan is a cyan foreground color
	ColorCyan = color.New(color.FgCyan)
	// ColorGray is a gray foreground color
	ColorGray = color.New(color.FgHiBlack)
)

var indent = "  "

// Output is where messages are written. Tests may swap it.
var Output io.Writer = color.Output

func printSymbol(c *color.Color, symbol, msg string) {
	fmt.Fprintf(Output, "%s%s %s", indent, c.Sprint(symbol), msg)
}

// Info prints information
func Info(msg string) {
	printSymbol(ColorBlue, "•", msg)
}

// Infof prints information with optional format verbs
func Infof(msg string, v ...interface{}) {
	printSymbol(ColorBlue, "•", fmt.Sprintf(msg, v...))
}

// Success prints a success message
func Success(msg string) {
	printSymbol(ColorGreen, "✔", msg)
}

// Successf prints a success message with optional format verbs
func Successf(msg string, v ...interface{}) {
	printSymbol(ColorGreen, "✔", fmt.Sprintf(msg, v...))
}

// Plain prints a plain message without any prefix symbol
func Plain(msg string) {
	fmt.Fprintf(Output, "%s%s", indent, msg)
}

// Plainf prints a plain message without any prefix symbol. It takes optional format verbs.
func Plainf(msg string, v ...interface{}) {
	fmt.Fprintf(Output, "%s%s", indent, fmt.Sprintf(msg, v...))
}

// Warnf prints a warning message with optional format verbs
func Warnf(msg string, v ...interface{}) {
	printSymbol(ColorYellow, "!", fmt.Sprintf(msg, v...))
}

// Error prints an error message
func Error(msg string) {
	printSymbol(ColorRed, "⨯", msg)
}

// Errorf prints an error message with optional format verbs
func Errorf(msg string, v ...interface{}) {
	printSymbol(ColorRed, "⨯", fmt.Sprintf(msg, v...))
}

// Printf prints a secondary message
func Printf(msg string, v ...interface{}) {
	printSymbol(ColorGray, "•", fmt.Sprintf(msg, v...))
}

// Hint prints a command the user can run to recover
func Hint(command string) {
	fmt.Fprintf(Output, "%s%s %s\n", indent+indent, ColorGray.Sprint("$"), ColorCyan.Sprint(command))
}

// Askf prints a question with optional format verbs. The leading symbol differs in color depending
// on whether the input is masked.
func Askf(msg string, masked bool, v ...interface{}) {
	symbolChar := "[?]"

	var symbol string
	if masked {
		symbol = ColorGray.Sprintf("%s", symbolChar)
	} else {
		symbol = ColorGreen.Sprintf("%s", symbolChar)
	}

	fmt.Fprintf(Output, "%s%s %s: ", indent, symbol, fmt.Sprintf(msg, v...))
}

// IsDebug returns true if debug mode is enabled
func IsDebug() bool {
	return os.Getenv(debugEnvName) == debugEnvValue
}

// Debug prints to stderr if HACKMD_DEBUG is set
func Debug(msg string, v ...interface{}) {
	if IsDebug() {
		fmt.Fprintf(color.Error, "%s %s", ColorGray.Sprint("DEBUG:"), fmt.Sprintf(msg, v...))
	}
}
