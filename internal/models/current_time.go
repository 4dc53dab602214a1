package models

import "time"

// CurrentTimeModel carries the server clock in two renditions.
type CurrentTimeModel struct {
	ReadableTime string `json:"readableTime"`
	Time         int64  `json:"time"`
}

// CurrentTimeData is the entry payload of the current-time endpoint.
type CurrentTimeData struct {
	Entry      CurrentTimeModel `json:"entry"`
	References ReferencesModel  `json:"references"`
}

// NewCurrentTimeData builds the current-time payload for the given instant.
func NewCurrentTimeData(t time.Time) CurrentTimeData {
	return CurrentTimeData{
		Entry: CurrentTimeModel{
			ReadableTime: t.Format(time.RFC3339),
			Time:         t.UnixNano() / int64(time.Millisecond),
		},
		References: NewEmptyReferences(),
	}
}
