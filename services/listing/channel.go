package listing

import (
	"tribunal_hearings_go/models"
	"tribunal_hearings_go/refdata"
)

// channelHierarchy orders oral channels strongest first: when parties want
// different formats the hearing is held in the strongest one anyone asked for
var channelHierarchy = []models.HearingChannel{
	models.ChannelFaceToFace,
	models.ChannelVideo,
	models.ChannelTelephone,
}

// ResolvedChannel decides the overall hearing channel. An adjournment in
// progress wins, then the live override, then the strongest channel any
// attending party selected. A case where nobody wants to attend is heard on
// the papers.
func ResolvedChannel(c *models.CaseData, ref refdata.Service) (models.HearingChannel, error) {
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() {
		if ch := c.Adjournment.TypeOfNextHearing.HearingChannel(); ch != "" {
			return ch, nil
		}
	}

	if override := liveOverrideFields(c); override.AppellantHearingChannel != "" {
		return override.AppellantHearingChannel, nil
	}

	channels, err := partyChannels(c)
	if err != nil {
		return "", err
	}
	for _, ch := range channelHierarchy {
		for _, got := range channels {
			if got == ch {
				return ch, nil
			}
		}
	}
	return models.ChannelPaper, nil
}

// Channels returns the overall channel as the single-entry wire reference
// list the scheduling service expects
func Channels(c *models.CaseData, ref refdata.Service) ([]string, error) {
	ch, err := ResolvedChannel(c, ref)
	if err != nil {
		return nil, err
	}
	return []string{ch.HmcReference()}, nil
}

func partyChannels(c *models.CaseData) ([]models.HearingChannel, error) {
	var channels []models.HearingChannel

	ch, err := individualChannel(c.HearingSubtype(), c.HearingOptions())
	if err != nil {
		return nil, err
	}
	channels = append(channels, ch)

	for i := range c.OtherParties {
		op := &c.OtherParties[i]
		ch, err := individualChannel(op.HearingSubtype, op.HearingOptions)
		if err != nil {
			return nil, err
		}
		channels = append(channels, ch)
	}
	return channels, nil
}

// IndividualPreferredChannel resolves one party's own attendance channel. The
// live override channel, when set, applies to the appellant's entry.
func IndividualPreferredChannel(subtype *models.HearingSubtype, options *models.HearingOptions, override *models.OverrideFields) (models.HearingChannel, error) {
	if override != nil && override.AppellantHearingChannel != "" {
		return override.AppellantHearingChannel, nil
	}
	return individualChannel(subtype, options)
}

// individualChannel derives a party's channel from their stated preferences.
// Wanting to attend without a usable channel selection is not schedulable.
func individualChannel(subtype *models.HearingSubtype, options *models.HearingOptions) (models.HearingChannel, error) {
	if options == nil || options.WantsToAttend.IsNoOrNull() {
		return models.ChannelNotAttending, nil
	}
	if subtype != nil {
		if subtype.WantsHearingTypeFaceToFace.IsYes() {
			return models.ChannelFaceToFace, nil
		}
		if subtype.WantsHearingTypeVideo.IsYes() && subtype.HearingVideoEmail != "" {
			return models.ChannelVideo, nil
		}
		if subtype.WantsHearingTypeTelephone.IsYes() && subtype.HearingTelephoneNumber != "" {
			return models.ChannelTelephone, nil
		}
	}
	return "", NewListingError("party wants to attend but selected no valid hearing channel")
}

// IsInterpreterRequired checks whether the hearing needs an interpreter,
// following the adjournment > override > hearing options precedence
func IsInterpreterRequired(c *models.CaseData, ref refdata.Service) bool {
	if c.Adjournment.InProgress() && ref.AdjournmentFlagEnabled() {
		return c.Adjournment.InterpreterRequired.IsYes()
	}
	if override := liveOverrideFields(c); override.AppellantInterpreter != nil {
		return override.AppellantInterpreter.IsInterpreterWanted.IsYes()
	}
	options := c.HearingOptions()
	if options == nil {
		return false
	}
	return options.LanguageInterpreter.IsYes() || options.WantsSignLanguageInterpreter()
}
