// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-presence-keeper/models"
)

// presenceDocument is the on-disk shape of the presence descriptor:
//
//	{
//	  "status":   {"type": "idle"},
//	  "rpcState": {"type": "PLAYING", "name": "...", ...}
//	}
//
// Pointers distinguish absent keys from empty values so that missing
// required keys can be reported.
type presenceDocument struct {
	Status *struct {
		Type *models.StatusType `json:"type" yaml:"type"`
	} `json:"status" yaml:"status"`

	RPCState *activityDocument `json:"rpcState" yaml:"rpcState"`
}

// activityDocument is the "rpcState" object. An absent "type" means
// [models.ActivityPlaying].
type activityDocument struct {
	Type    *models.ActivityType `json:"type" yaml:"type"`
	Name    string               `json:"name" yaml:"name"`
	Details string               `json:"details" yaml:"details"`
	State   string               `json:"state" yaml:"state"`
	URL     string               `json:"url" yaml:"url"`

	Timestamps *struct {
		Start *models.Timestamp `json:"start" yaml:"start"`
	} `json:"timestamps" yaml:"timestamps"`

	Assets *assetsDocument `json:"assets" yaml:"assets"`
}

// assetsDocument accepts both the short keys ("largeImage") and the
// "...Key" spelling ("largeImageKey"); the short key wins when both are set.
type assetsDocument struct {
	LargeImage    string `json:"largeImage" yaml:"largeImage"`
	LargeImageKey string `json:"largeImageKey" yaml:"largeImageKey"`
	LargeText     string `json:"largeText" yaml:"largeText"`
	LargeImageTxt string `json:"largeImageText" yaml:"largeImageText"`
	SmallImage    string `json:"smallImage" yaml:"smallImage"`
	SmallImageKey string `json:"smallImageKey" yaml:"smallImageKey"`
	SmallText     string `json:"smallText" yaml:"smallText"`
	SmallImageTxt string `json:"smallImageText" yaml:"smallImageText"`
}

// toModel converts the decoded document into a [models.PresenceConfig].
// It fails only when a required key is missing.
func (d presenceDocument) toModel() (models.PresenceConfig, error) {
	if d.Status == nil || d.Status.Type == nil {
		return models.PresenceConfig{}, ErrMissingStatusType
	}
	if d.RPCState == nil {
		return models.PresenceConfig{}, ErrMissingRPCState
	}

	activity := models.ActivityConfig{
		Type:    models.ActivityPlaying,
		Name:    d.RPCState.Name,
		Details: d.RPCState.Details,
		State:   d.RPCState.State,
		URL:     d.RPCState.URL,
	}
	if d.RPCState.Type != nil {
		activity.Type = *d.RPCState.Type
	}

	if ts := d.RPCState.Timestamps; ts != nil {
		activity.Timestamps = &models.ActivityTimestamps{Start: ts.Start}
	}

	if a := d.RPCState.Assets; a != nil {
		activity.Assets = &models.ActivityAssets{
			LargeImage: firstNonEmpty(a.LargeImage, a.LargeImageKey),
			LargeText:  firstNonEmpty(a.LargeText, a.LargeImageTxt),
			SmallImage: firstNonEmpty(a.SmallImage, a.SmallImageKey),
			SmallText:  firstNonEmpty(a.SmallText, a.SmallImageTxt),
		}
	}

	return models.PresenceConfig{
		Status:   *d.Status.Type,
		Activity: activity,
	}, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
