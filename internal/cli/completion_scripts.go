package cli

var completionScripts = map[string]string{
	"bash": bashCompletionScript,
	"zsh":  zshCompletionScript,
	"fish": fishCompletionScript,
}

const bashCompletionScript = `# bash completion for dapx
_dapx_completion() {
  local cur first
  COMPREPLY=()
  cur="${COMP_WORDS[COMP_CWORD]}"

  if [[ ${COMP_CWORD} -eq 1 ]]; then
    local words
    words="$(dapx __complete commands 2>/dev/null)"
    words="$words"$'\n'"--config"$'\n'"--help"$'\n'"-h"$'\n'"--version"$'\n'"-V"
    COMPREPLY=( $(compgen -W "$words" -- "$cur") )
    return 0
  fi

  first="${COMP_WORDS[1]}"
  if [[ "$first" == "completion" ]]; then
    COMPREPLY=( $(compgen -W "bash zsh fish" -- "$cur") )
    return 0
  fi

  if [[ "$first" == "launch" && ${COMP_CWORD} -eq 2 && "$cur" != -* ]]; then
    COMPREPLY=( $(compgen -W "$(dapx __complete launches 2>/dev/null)" -- "$cur") )
    return 0
  fi

  if [[ "$first" == "decode" || "$first" == "normalize" ]] && [[ "$cur" != -* ]]; then
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
  fi

  COMPREPLY=( $(compgen -W "$(dapx __complete flags "$first" 2>/dev/null)" -- "$cur") )
}
complete -F _dapx_completion dapx
`

const zshCompletionScript = `#compdef dapx
_dapx_completion() {
  local -a commands flags launches

  if (( CURRENT == 2 )); then
    commands=(${(f)"$(dapx __complete commands 2>/dev/null)"})
    commands+=(--config --help -h --version -V)
    _describe 'dapx command' commands
    return
  fi

  if [[ "${words[2]}" == "completion" ]]; then
    _values 'shell' bash zsh fish
    return
  fi

  if [[ "${words[2]}" == "launch" ]] && (( CURRENT == 3 )) && [[ "${words[CURRENT]}" != -* ]]; then
    launches=(${(f)"$(dapx __complete launches 2>/dev/null)"})
    _describe 'launch configuration' launches
    return
  fi

  if [[ "${words[2]}" == "decode" || "${words[2]}" == "normalize" ]] && [[ "${words[CURRENT]}" != -* ]]; then
    _files
    return
  fi

  flags=(${(f)"$(dapx __complete flags ${words[2]} 2>/dev/null)"})
  _describe 'flag' flags
}
compdef _dapx_completion dapx
`

const fishCompletionScript = `function __dapx_words
    commandline -opc
end

function __dapx_command
    set -l w (__dapx_words)
    if test (count $w) -ge 2
        echo $w[2]
    end
end

complete -c dapx -f
complete -c dapx -n 'test (count (__dapx_words)) -eq 1' -a "--config --help -h --version -V (dapx __complete commands 2>/dev/null)"
complete -c dapx -n 'set -l w (__dapx_words); test (count $w) -eq 2; and test "$w[2]" = completion' -a "bash zsh fish"
complete -c dapx -n 'set -l w (__dapx_words); test (count $w) -eq 2; and test "$w[2]" = launch' -a "(dapx __complete launches 2>/dev/null)"
complete -c dapx -n 'set -l w (__dapx_words); test (count $w) -ge 2; and contains -- "$w[2]" decode normalize' -F
complete -c dapx -n 'set -l w (__dapx_words); test (count $w) -ge 2; and test "$w[2]" != completion' -a "(dapx __complete flags (__dapx_command) 2>/dev/null)"
`
