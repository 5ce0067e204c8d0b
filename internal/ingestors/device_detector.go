package ingestors

import (
	"strings"

	"qrmenu-analytics/internal/models"

	"github.com/mileusna/useragent"
)

//go:generate mockgen -source=device_detector.go -destination=./mocks/device_detector_mock.go -package=mocks
type DeviceDetector interface {
	// Detect classifies a User-Agent header. Bots and unparseable agents are DeviceUnknown.
	Detect(userAgent string) models.DeviceType
}

type deviceDetector struct{}

func NewDeviceDetector() DeviceDetector {
	return &deviceDetector{}
}

func (d *deviceDetector) Detect(userAgent string) models.DeviceType {
	userAgent = strings.TrimSpace(userAgent)
	if userAgent == "" {
		return models.DeviceUnknown
	}

	parsed := useragent.Parse(userAgent)
	switch {
	case parsed.Bot:
		return models.DeviceUnknown
	case parsed.Tablet:
		return models.DeviceTablet
	case parsed.Mobile:
		return models.DeviceMobile
	case parsed.Desktop:
		return models.DeviceDesktop
	}
	return models.DeviceUnknown
}
