// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/glamour"
)

type Id int

const (
	FileNotFoundId Id = iota + 1
	VariableNotFoundId
	VariableExistsId
	GroupNotFoundId
	DefaultGroupProtectedId
	InvalidFormatId
	StorageFailedId
	CommandNotFoundId
	ConfigLoadFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

// Render renders the issue Markdown with the given glamour style ("dark", "light", "notty").
func (i *Issue) Render(stylePath string) (string, error) {
	var md strings.Builder
	md.WriteString(string(i.mdMsg))
	if len(i.docLinks) > 0 {
		md.WriteString("\n\n## See also:\n")
		for _, link := range i.docLinks {
			md.WriteString("- [" + string(link) + "](" + string(link) + ")\n")
		}
	}
	return render(md.String(), stylePath)
}

const readmeLink HttpLink = "https://github.com/zxygithub/evm/blob/main/README.md"

var (
	render = glamour.Render

	fileNotFoundIssue = &Issue{
		id: FileNotFoundId,
		mdMsg: `
# File not found!

The file you asked evm to read does not exist or is not a regular file.

## Things you can try:
- Check the path for typos
- Use an absolute path, relative paths resolve from the current directory
- List your backups:
~~~
$ ls ~/.evm/backup_*.json
~~~`,
		docLinks: []HttpLink{readmeLink},
	}

	variableNotFoundIssue = &Issue{
		id: VariableNotFoundId,
		mdMsg: `
# Variable not found!

No variable with that name is stored.

## Things you can try:
- Search for it by partial name:
~~~
$ evm search <part-of-name>
~~~
- Grouped variables are stored as ` + "`group:NAME`" + `, try:
~~~
$ evm getg <group> <NAME>
~~~`,
		docLinks: []HttpLink{readmeLink},
	}

	variableExistsIssue = &Issue{
		id: VariableExistsId,
		mdMsg: `
# Variable already exists!

Renaming never overwrites an existing variable.

## Things you can try:
- Delete the target first:
~~~
$ evm delete <new-name>
~~~
- Or use ` + "`evm copy`" + `, which overwrites the destination`,
	}

	groupNotFoundIssue = &Issue{
		id: GroupNotFoundId,
		mdMsg: `
# Group not found!

No stored key carries that group prefix.

## Things you can try:
- List the groups that exist:
~~~
$ evm groups
~~~`,
	}

	defaultGroupProtectedIssue = &Issue{
		id: DefaultGroupProtectedId,
		mdMsg: `
# The default namespace cannot be deleted!

Variables without a group prefix live in the implicit ` + "`default`" + ` namespace.

## Things you can try:
- Remove every variable instead:
~~~
$ evm clear
~~~`,
	}

	invalidFormatIssue = &Issue{
		id: InvalidFormatId,
		mdMsg: `
# Invalid file format!

The file could not be decoded in the requested format.

## Supported formats:
- ` + "`json`" + ` - a flat JSON object, or a backup envelope with a ` + "`variables`" + ` field
- ` + "`env`" + ` - ` + "`KEY=VALUE`" + ` lines, ` + "`#`" + ` comments allowed
- ` + "`sh`" + ` - export only

## Things you can try:
- Force the format explicitly:
~~~
$ evm load config.txt --format env
~~~`,
		docLinks: []HttpLink{readmeLink},
	}

	storageFailedIssue = &Issue{
		id: StorageFailedId,
		mdMsg: `
# Could not write the variable store!

evm rewrites its JSON store after every change and the write failed.
Nothing was changed.

## Things you can try:
- Check permissions of ` + "`~/.evm`" + `
- Point evm at another file:
~~~
$ evm --env-file /tmp/env.json list
~~~`,
	}

	commandNotFoundIssue = &Issue{
		id: CommandNotFoundId,
		mdMsg: `
# Command not found!

The program passed to ` + "`evm exec`" + ` could not be located in your PATH.

## Things you can try:
- Separate evm flags from the command with ` + "`--`" + `:
~~~
$ evm exec -- python script.py
~~~
- Run a shell snippet in the built-in interpreter:
~~~
$ evm exec --virtual 'echo $API_KEY'
~~~`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

## Things you can try:
- Check the config file syntax (CUE or TOML)
- Show where evm looks for configuration:
~~~
$ evm config path
~~~`,
	}

	issues = map[Id]*Issue{
		fileNotFoundIssue.Id():          fileNotFoundIssue,
		variableNotFoundIssue.Id():      variableNotFoundIssue,
		variableExistsIssue.Id():        variableExistsIssue,
		groupNotFoundIssue.Id():         groupNotFoundIssue,
		defaultGroupProtectedIssue.Id(): defaultGroupProtectedIssue,
		invalidFormatIssue.Id():         invalidFormatIssue,
		storageFailedIssue.Id():         storageFailedIssue,
		commandNotFoundIssue.Id():       commandNotFoundIssue,
		configLoadFailedIssue.Id():      configLoadFailedIssue,
	}
)

// Values returns every catalog entry ordered by Id.
func Values() []*Issue {
	ids := slices.Sorted(maps.Keys(issues))
	out := make([]*Issue, 0, len(ids))
	for _, id := range ids {
		out = append(out, issues[id])
	}
	return out
}

func Get(id Id) *Issue {
	return issues[id]
}
