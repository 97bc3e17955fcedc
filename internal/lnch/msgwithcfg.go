//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"github.com/e-gun/DistantReader/internal/mm"
	"github.com/e-gun/DistantReader/internal/str"
)

func UpdateMessageMakerWithConfig(m *mm.MessageMaker, cfg *str.CurrentConfiguration) {
	m.BW = cfg.BlackAndWhite
	m.LLvl = cfg.LogLevel
}
