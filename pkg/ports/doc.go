/*
Package ports defines the driven ports (interfaces) of the hotdeck engine.

These interfaces decouple the hotkey/deck core from the collaborators it drives
or is driven by, allowing the engine to run against various storage backends,
input transports and broadcasting tools.

# Key Interfaces

  - SettingsStore: key/value persistence of the hotkey, deck and active-sub-deck snapshots.
  - TriggerSource: delivers normalized MIDI and keyboard events.
  - Broadcaster: the broadcasting tool targeted by scene, source, filter and output actions.
  - Mixer: the audio mixer targeted by volume and mute actions.
  - EventPublisher: receives domain events after every mutation or execution.
  - DistributedLocker: serializes snapshot writes across processes sharing a store.
  - HotkeyService: the engine surface consumed by driving adapters (HTTP, MCP).
*/
package ports
