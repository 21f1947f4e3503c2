// SPDX-FileCopyrightText: 2025 The Umaskexec Authors
// SPDX-License-Identifier: EUPL-1.2

// Package mask parses, evaluates and renders file mode creation masks.
//
// A Mask uses umask semantics: every set bit denies the corresponding
// permission to files and directories created by the process.
package mask

import (
	"fmt"
	"io/fs"
	"strings"
)

// Mask is a file mode creation mask in the range 0 to 0777.
type Mask uint16

// Permission bits grouped by class and by permission.
const (
	UserBits  Mask = 0o700
	GroupBits Mask = 0o070
	OtherBits Mask = 0o007
	AllBits        = UserBits | GroupBits | OtherBits

	ReadBits    Mask = 0o444
	WriteBits   Mask = 0o222
	ExecuteBits Mask = 0o111
)

// Class is one of the owner, group and other permission groups.
type Class struct {
	Name   string
	Letter byte
	Bits   Mask
}

// Perm is one of the read, write and execute permissions.
type Perm struct {
	Name   string
	Letter byte
	Bits   Mask
}

// Classes lists the permission groups from most to least significant.
var Classes = [...]Class{ //nolint:gochecknoglobals
	{Name: "owner", Letter: 'u', Bits: UserBits},
	{Name: "group", Letter: 'g', Bits: GroupBits},
	{Name: "other", Letter: 'o', Bits: OtherBits},
}

// Perms lists the permissions in the order they are written.
var Perms = [...]Perm{ //nolint:gochecknoglobals
	{Name: "read", Letter: 'r', Bits: ReadBits},
	{Name: "write", Letter: 'w', Bits: WriteBits},
	{Name: "execute", Letter: 'x', Bits: ExecuteBits},
}

// Valid reports whether m fits in the nine permission bits.
func (m Mask) Valid() bool {
	return m&^AllBits == 0
}

// Denies reports whether m denies perm to class.
func (m Mask) Denies(class Class, perm Perm) bool {
	return m&class.Bits&perm.Bits != 0
}

// Restrict returns the mode a file requested with perm is created with.
func (m Mask) Restrict(perm fs.FileMode) fs.FileMode {
	return perm &^ fs.FileMode(m&AllBits)
}

// Allowed returns the permissions left to a file requested with mode 0777.
func (m Mask) Allowed() fs.FileMode {
	return m.Restrict(fs.ModePerm)
}

// Octal renders m as a zero prefixed octal string such as "0022".
func (m Mask) Octal() string {
	return fmt.Sprintf("%04o", uint16(m&AllBits))
}

// Symbolic renders the permissions m allows, such as "u=rwx,g=rx,o=rx".
func (m Mask) Symbolic() string {
	var b strings.Builder

	for i, class := range Classes {
		if i > 0 {
			b.WriteByte(',')
		}

		b.WriteByte(class.Letter)
		b.WriteByte('=')

		for _, perm := range Perms {
			if !m.Denies(class, perm) {
				b.WriteByte(perm.Letter)
			}
		}
	}

	return b.String()
}

// String implements fmt.Stringer using the octal form.
func (m Mask) String() string {
	return m.Octal()
}
