// Copyright (c) 2026 Daniyar Maskun <hello@daniyar.design>
// All rights reserved. See LICENSE for details.

package docstore

import (
	"encoding/json"
	"fmt"
)

// mergeJSON deep-merges the patch object into the current object and
// returns the merged document. Postgres' jsonb || operator is shallow, so
// the merge is done here and written back under a row lock.
func mergeJSON(cur, patch json.RawMessage) (json.RawMessage, error) {
	var curMap, patchMap map[string]any
	if len(cur) > 0 {
		if err := json.Unmarshal(cur, &curMap); err != nil {
			return nil, fmt.Errorf("unmarshal stored document: %w", err)
		}
	}
	if err := json.Unmarshal(patch, &patchMap); err != nil {
		return nil, fmt.Errorf("unmarshal patch: %w", err)
	}
	if curMap == nil {
		curMap = map[string]any{}
	}

	out, err := json.Marshal(mergeMaps(curMap, patchMap))
	if err != nil {
		return nil, fmt.Errorf("marshal merged document: %w", err)
	}
	return out, nil
}

// mergeMaps overlays src onto dst recursively. Nested objects merge;
// arrays and scalars from src win.
func mergeMaps(dst, src map[string]any) map[string]any {
	out := make(map[string]any, len(dst)+len(src))
	for k, v := range dst {
		out[k] = v
	}
	for k, v := range src {
		srcObj, srcIsObj := v.(map[string]any)
		dstObj, dstIsObj := out[k].(map[string]any)
		if srcIsObj && dstIsObj {
			out[k] = mergeMaps(dstObj, srcObj)
			continue
		}
		out[k] = v
	}
	return out
}
