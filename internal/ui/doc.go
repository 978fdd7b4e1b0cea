// Package ui provides the terminal dashboard for renpho-watch.
//
// # Architecture Overview
//
// The dashboard is a Bubble Tea program that renders the latest scale data
// from the renpho client's caches. It is read-only: the background poller
// owns all network traffic, and the UI only takes snapshots.
//
// # Package Structure
//
//   - app.go: the root Model, Init/Update/View, messages, and the Run function
//   - view.go: panel rendering and data reduction for display
//   - theme.go: color themes and pre-built Lipgloss styles
//   - keys.go: keyboard bindings
//   - format.go: value formatting (units, ages, timestamps)
//
// # Event Flow
//
//  1. Run() constructs the Model and starts the Bubble Tea program
//  2. A ticker command re-reads renpho.Client.Snapshot() every second
//  3. The "r" key triggers an immediate fetch of every resource
//  4. Theme and unit choices persist through the prefs package
//
// # Panels
//
//   - Weight: latest reading with timestamp and source scale
//   - Body Composition: BMI, body fat, water, muscle, and the rest
//   - Girths: newest non-zero tape measurement per circumference
//   - Goals: newest goal per girth type
//   - Scales: bound devices with MAC addresses
//
// # Key Bindings
//
//   - r: refresh all data immediately
//   - u: toggle kg/lb display
//   - T: cycle color theme
//   - h or ?: help overlay
//   - q, e, or Ctrl+C: exit
package ui
