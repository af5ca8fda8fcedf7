// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains user-facing strings shared by the terminal UI and the
// wactl command line tool.
//
// Keeping them in one place ensures both surfaces report the same outcome
// with the same wording.
package app

import "fmt"

const (
	// MsgSent is the title of the notice shown after a successful send.
	MsgSent = "Message sent to WhatsApp"

	// MsgAcceptedNoID is shown when the backend accepted the message but did
	// not return a provider id, so delivery cannot be tracked.
	MsgAcceptedNoID = "Message accepted by backend"

	// MsgSendFailed is the title of the notice shown when a send fails. The
	// error text follows it verbatim.
	MsgSendFailed = "Failed to send message"

	// MsgWaitingForCallbacks is shown while no delivery status was reported.
	MsgWaitingForCallbacks = "waiting for webhook callbacks"

	// MsgCheckingDelivery is shown while a status fetch is in flight.
	MsgCheckingDelivery = "Checking delivery updates..."

	// MsgStatusFetchFailed is shown inline when a status poll fails. Polling
	// continues regardless.
	MsgStatusFetchFailed = "Unable to fetch status from backend."

	// MsgCopied is shown after the tracked message id was copied.
	MsgCopied = "Message id copied to clipboard"

	// MsgCopyFailed is shown when the clipboard is unavailable.
	MsgCopyFailed = "Unable to copy to clipboard"

	// MsgSending replaces the send control while a send is in flight.
	MsgSending = "Sending..."

	// MsgUnknown names a campaign or contact that no longer exists.
	MsgUnknown = "Unknown"

	// MsgTimedOut replaces deadline errors of backend calls.
	MsgTimedOut = "Backend did not respond in time"
)

// TrackingMessage describes the message id the poller is following.
func TrackingMessage(id string) string {
	return fmt.Sprintf("Tracking delivery status for %s", id)
}

// LatestStatusMessage renders the delivery panel headline. An empty status
// means the backend has not received any callback yet.
func LatestStatusMessage(status string) string {
	if status == "" {
		status = MsgWaitingForCallbacks
	}
	return fmt.Sprintf("Latest status: %s", status)
}
