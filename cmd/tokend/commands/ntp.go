package commands

import (
	"time"

	"github.com/beevik/ntp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxClockGap is the drift from network time tolerated for the local block clock.
const maxClockGap = time.Second

func checkNTPTime(servers []string, log *logrus.Logger) error {
	var (
		ntpTime time.Time
		err     error
	)
	for i, server := range servers {
		ntpTime, err = ntp.Time(server)
		if err != nil {
			if i == len(servers)-1 {
				return errors.Wrap(err, "acquire ntp time")
			}
			continue
		}
		log.Info("ntp server ", server)
		break
	}
	gap := time.Until(ntpTime)
	if gap > maxClockGap || gap < -maxClockGap {
		return errors.Errorf("gap between ntp time and local time is %v", gap)
	}
	return nil
}
