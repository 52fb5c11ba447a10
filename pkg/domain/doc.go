/*
Package domain contains the core domain models of the hotdeck engine.

It defines the entities a streamer configures (Hotkeys, Decks, Triggers and Actions),
the normalized input events delivered by trigger sources, the domain events emitted
after every state change, and the portable Configuration format used for
import/export. This package is kept pure and free of I/O, following Hexagonal
Architecture principles.

# Key Entities

  - Hotkey: a named binding of up to one Trigger per kind to an ordered list of Actions.
  - Deck: a rows×columns grid that positions Hotkeys. A Deck with a parent is a Sub-Deck.
  - Trigger: a tagged union over MIDI, keyboard and click trigger definitions.
  - Action: one step of a Hotkey's sequence; its Data decodes into a typed ActionPayload.
  - Event: the closed set of notifications published to the presentation layer.
*/
package domain
