package skema

// issueAt creates an Issue at the given path, rendering msg with params.
func issueAt(path, code string, kind ErrorKind, msg Message, params Params) Issue {
	return Issue{Path: path, Code: code, Kind: kind, Message: msg.Render(params), Params: params}
}
