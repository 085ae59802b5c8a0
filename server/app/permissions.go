package app

// The two named overwrite configurations for an article channel. Both are
// pure computations; applying them is the gateway's job, so the sets stay
// testable without a live guild.

const editorCaps = CapView | CapSend | CapHistory | CapManage

// ActiveOverwrites makes a channel private to its writers and the editors:
// everyone else cannot see it, editors get full access, each assigned
// writer gets read+write.
func ActiveOverwrites(ws Workspace, writerIDs []string) []Overwrite {
	ow := []Overwrite{
		{TargetID: ws.EveryoneRoleID, Kind: TargetRole, Deny: CapView},
		{TargetID: ws.EditorRoleID, Kind: TargetRole, Allow: editorCaps},
	}
	for _, id := range writerIDs {
		ow = append(ow, Overwrite{
			TargetID: id,
			Kind:     TargetMember,
			Allow:    CapView | CapSend | CapHistory,
		})
	}
	return ow
}

// ArchivedOverwrites rewrites a channel's existing overwrite set to
// read-only: editors keep posting rights, every other target (the original
// writers included) is left able to read but explicitly denied sending, so
// a permissive category default cannot re-grant write access.
func ArchivedOverwrites(ws Workspace, existing []Overwrite) []Overwrite {
	out := make([]Overwrite, 0, len(existing)+2)
	var haveEveryone, haveEditors bool

	for _, ow := range existing {
		switch {
		case ow.Kind == TargetRole && ow.TargetID == ws.EditorRoleID:
			out = append(out, Overwrite{TargetID: ow.TargetID, Kind: TargetRole, Allow: editorCaps})
			haveEditors = true
		default:
			if ow.Kind == TargetRole && ow.TargetID == ws.EveryoneRoleID {
				haveEveryone = true
			}
			out = append(out, readOnly(ow.TargetID, ow.Kind))
		}
	}

	if !haveEveryone {
		out = append(out, readOnly(ws.EveryoneRoleID, TargetRole))
	}
	if !haveEditors {
		out = append(out, Overwrite{TargetID: ws.EditorRoleID, Kind: TargetRole, Allow: editorCaps})
	}
	return out
}

func readOnly(targetID string, kind TargetKind) Overwrite {
	return Overwrite{
		TargetID: targetID,
		Kind:     kind,
		Allow:    CapView | CapHistory,
		Deny:     CapSend,
	}
}
