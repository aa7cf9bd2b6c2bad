package shell

const BashScript = `# gitpr shell integration for bash

gitpr() {
    local signal_file ret target_dir

    # Fresh empty signal file per invocation: no two runs share state,
    # and a crashed run can never leave a stale path behind.
    signal_file=$(mktemp "${TMPDIR:-/tmp}/git-pull-request-chdir.XXXXXX") || return 1

    GITPR_CHDIR_FILE="$signal_file" command gitpr "$@"
    ret=$?

    target_dir=$(cat "$signal_file" 2>/dev/null)
    rm -f "$signal_file"

    if [[ -n "$target_dir" && -d "$target_dir" ]]; then
        cd "$target_dir"
    elif [[ -n "$target_dir" ]]; then
        echo "gitpr: cannot change directory to '$target_dir': no such directory" >&2
    fi

    return $ret
}

# Bash completion for gitpr
_gitpr_completion() {
    local cur prev
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ $COMP_CWORD -eq 1 ]]; then
        COMPREPLY=($(compgen -W "list fetch fetch-all close merge open pull submit update continue-update cu info config shell-init version help" -- "$cur"))
    elif [[ ${COMP_WORDS[1]} == "config" && $COMP_CWORD -eq 2 ]]; then
        COMPREPLY=($(compgen -W "export import" -- "$cur"))
    elif [[ ${COMP_WORDS[1]} == "shell-init" && $COMP_CWORD -eq 2 ]]; then
        COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
    fi
}

complete -F _gitpr_completion gitpr
`
