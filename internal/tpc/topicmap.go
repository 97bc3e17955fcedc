//    DistantReader
//    Copyright: E Gunderson 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package tpc

import (
	"github.com/e-gun/DistantReader/internal/gen"
	"github.com/e-gun/DistantReader/internal/str"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// TopicMap - project each document's topic mixture onto its first two principal components
func TopicMap(docsOverTopics mat.Matrix) []str.MapPoint {
	dr, dc := docsOverTopics.Dims()
	if dc < 2 || dr < 2 {
		return nil
	}

	// rows are topics and columns documents: PCA wants documents as the observations
	obs := mat.DenseCopyOf(docsOverTopics.T())
	for topic := 0; topic < dr; topic++ {
		mean := stat.Mean(mat.Col(nil, topic, obs), nil)
		for doc := 0; doc < dc; doc++ {
			obs.Set(doc, topic, obs.At(doc, topic)-mean)
		}
	}

	var pc stat.PC
	if ok := pc.PrincipalComponents(obs, nil); !ok {
		return nil
	}
	var vecs mat.Dense
	pc.VectorsTo(&vecs)

	_, nv := vecs.Dims()
	k := min(2, nv)
	var proj mat.Dense
	proj.Mul(obs, vecs.Slice(0, dr, 0, k))

	pts := make([]str.MapPoint, dc)
	for doc := 0; doc < dc; doc++ {
		p := str.MapPoint{Doc: doc, Topic: dominant(docsOverTopics, doc), X: gen.Round(proj.At(doc, 0), 4)}
		if k > 1 {
			p.Y = gen.Round(proj.At(doc, 1), 4)
		}
		pts[doc] = p
	}
	return pts
}
