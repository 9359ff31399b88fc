package models

// HearingChannel is the way a hearing (or an individual's attendance) is held
type HearingChannel string

const (
	ChannelFaceToFace   HearingChannel = "faceToFace"
	ChannelVideo        HearingChannel = "video"
	ChannelTelephone    HearingChannel = "telephone"
	ChannelPaper        HearingChannel = "paper"
	ChannelNotAttending HearingChannel = "notAttending"
)

// HmcReference returns the scheduling service's wire code for the channel
func (c HearingChannel) HmcReference() string {
	switch c {
	case ChannelFaceToFace:
		return "INTER"
	case ChannelVideo:
		return "VID"
	case ChannelTelephone:
		return "TEL"
	case ChannelPaper:
		return "ONPPRS"
	case ChannelNotAttending:
		return "NA"
	}
	return ""
}

// HearingPriority values accepted by the scheduling service
const (
	PriorityStandard = "Standard"
	PriorityUrgent   = "Urgent"
)

// Hearing types sent on creation requests. Substantive is the fixed default
// for newly requested hearings.
const (
	HearingTypeSubstantive = "BBA3-substantive"
	HearingTypeDirection   = "BBA3-direction"
)
